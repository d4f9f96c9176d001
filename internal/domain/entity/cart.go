package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLineItem es la línea de carrito emitida por el wizard al confirmar una persiana
// configurada. El carrito en sí es un colaborador externo (sink fire-and-forget).
type CartLineItem struct {
	ID            string
	ProductID     string
	Width         decimal.Decimal
	Height        decimal.Decimal
	ChosenOptions map[CategoryKind]string // kind -> valueID
	Quantity      int
	UnitPrice     decimal.Decimal
	CreatedAt     time.Time
}
