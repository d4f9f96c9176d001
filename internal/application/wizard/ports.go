package wizard

import (
	"context"

	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

// CartSink es el carrito externo: recibe la línea emitida por AddToCart
// (fire-and-forget desde la perspectiva del asistente).
type CartSink interface {
	AddLineItem(ctx context.Context, item *entity.CartLineItem) error
}
