package dto

import (
	"github.com/shopspring/decimal"
)

// QuoteRequest cotización canónica: elección por valueID por categoría.
// Names es el camino grueso del wizard (kind -> nombre mostrado); si ambos vienen,
// Chosen tiene prioridad.
type QuoteRequest struct {
	ProductID string            `json:"product_id" validate:"required"`
	Width     decimal.Decimal   `json:"width"`
	Height    decimal.Decimal   `json:"height"`
	Chosen    map[string]string `json:"chosen,omitempty"`
	Names     map[string]string `json:"names,omitempty"`
}

// CategoryLineResponse término de una categoría en el desglose.
type CategoryLineResponse struct {
	Kind                 string          `json:"kind"`
	ValueID              string          `json:"value_id"`
	ValueName            string          `json:"value_name"`
	BaseAdjustment       decimal.Decimal `json:"base_adjustment"`
	AdditionalAdjustment decimal.Decimal `json:"additional_adjustment"`
	Subtotal             decimal.Decimal `json:"subtotal"`
}

// QuoteResponse desglose completo de precio, término a término, más el total.
type QuoteResponse struct {
	ProductID      string                 `json:"product_id"`
	BasePrice      decimal.Decimal        `json:"base_price"`
	Width          decimal.Decimal        `json:"width"`
	Height         decimal.Decimal        `json:"height"`
	SizeRatio      decimal.Decimal        `json:"size_ratio"`
	SizeAdjustment decimal.Decimal        `json:"size_adjustment"`
	Categories     []CategoryLineResponse `json:"categories"`
	Total          decimal.Decimal        `json:"total"`
	TotalDisplay   string                 `json:"total_display"`
}
