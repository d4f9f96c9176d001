package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/persianas-api/internal/application/wizard"
	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

var _ wizard.CartSink = (*CartSink)(nil)

// CartSink persiste las líneas que emite el asistente en una tabla de staging que el
// carrito externo consume. Las opciones elegidas viajan como JSONB.
type CartSink struct {
	q Querier
}

// NewCartSink construye el adaptador. Pasar pool o tx (Querier).
func NewCartSink(q Querier) *CartSink {
	return &CartSink{q: q}
}

// AddLineItem inserta la línea emitida. El ID viene generado por el dominio; un
// duplicado indica doble emisión de la misma sesión.
func (s *CartSink) AddLineItem(ctx context.Context, item *entity.CartLineItem) error {
	chosen, err := json.Marshal(item.ChosenOptions)
	if err != nil {
		return fmt.Errorf("encode chosen options: %w", err)
	}
	query := `
		INSERT INTO cart_line_items
			(id, product_id, width, height, chosen_options, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = s.q.Exec(ctx, query,
		item.ID, item.ProductID, item.Width, item.Height, chosen,
		item.Quantity, item.UnitPrice, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert cart line item: %w", err)
	}
	return nil
}
