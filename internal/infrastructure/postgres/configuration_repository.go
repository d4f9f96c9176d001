package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
)

var _ repository.ConfigurationRepository = (*ConfigurationRepo)(nil)

// ConfigurationRepo implementa ConfigurationRepository sobre PostgreSQL. La
// configuración es un agregado pequeño que siempre se lee y escribe completo, así que
// selections, rooms y dimensions viven como JSONB en una sola fila por producto.
type ConfigurationRepo struct {
	q Querier
}

// NewConfigurationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConfigurationRepository(q Querier) *ConfigurationRepo {
	return &ConfigurationRepo{q: q}
}

// GetByProductID carga la configuración de un producto. Devuelve nil si no existe.
func (r *ConfigurationRepo) GetByProductID(ctx context.Context, productID string) (*entity.ProductConfiguration, error) {
	query := `
		SELECT product_id, revision, dimensions, selections, rooms, created_at, updated_at
		FROM product_configurations WHERE product_id = $1`
	var (
		cfg        entity.ProductConfiguration
		dimensions []byte
		selections []byte
		rooms      []byte
	)
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&cfg.ProductID, &cfg.Revision, &dimensions, &selections, &rooms,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuration: %w", err)
	}
	if err := json.Unmarshal(dimensions, &cfg.Dimensions); err != nil {
		return nil, fmt.Errorf("decode dimensions: %w", err)
	}
	if err := json.Unmarshal(selections, &cfg.Selections); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}
	if err := json.Unmarshal(rooms, &cfg.Rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	return &cfg, nil
}

// Save persiste la configuración con compare-and-swap sobre Revision: el UPDATE solo
// aplica si la fila aún tiene expectedRevision; si no hay fila se intenta el INSERT.
// En ambos caminos, perder la carrera termina en domain.ErrConflict.
func (r *ConfigurationRepo) Save(ctx context.Context, cfg *entity.ProductConfiguration, expectedRevision int64) error {
	dimensions, err := json.Marshal(cfg.Dimensions)
	if err != nil {
		return fmt.Errorf("encode dimensions: %w", err)
	}
	selections, err := json.Marshal(cfg.Selections)
	if err != nil {
		return fmt.Errorf("encode selections: %w", err)
	}
	rooms, err := json.Marshal(cfg.Rooms)
	if err != nil {
		return fmt.Errorf("encode rooms: %w", err)
	}

	update := `
		UPDATE product_configurations
		SET revision = $2, dimensions = $3, selections = $4, rooms = $5, updated_at = $6
		WHERE product_id = $1 AND revision = $7`
	cmd, err := r.q.Exec(ctx, update,
		cfg.ProductID, cfg.Revision, dimensions, selections, rooms, cfg.UpdatedAt,
		expectedRevision,
	)
	if err != nil {
		return fmt.Errorf("update configuration: %w", err)
	}
	if cmd.RowsAffected() == 1 {
		return nil
	}

	insert := `
		INSERT INTO product_configurations
			(product_id, revision, dimensions, selections, rooms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (product_id) DO NOTHING`
	cmd, err = r.q.Exec(ctx, insert,
		cfg.ProductID, cfg.Revision, dimensions, selections, rooms,
		cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert configuration: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// Existe una fila con otra revisión: otra sesión de vendedor ganó la carrera.
		return domain.ErrConflict
	}
	return nil
}

// GetProductInfo lee nombre y precio base del producto dueño de la configuración.
func (r *ConfigurationRepo) GetProductInfo(ctx context.Context, productID string) (*repository.ProductInfo, error) {
	var info repository.ProductInfo
	err := r.q.QueryRow(ctx,
		`SELECT id, name, base_price FROM products WHERE id = $1`,
		productID,
	).Scan(&info.ProductID, &info.Name, &info.BasePrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product info: %w", err)
	}
	return &info, nil
}
