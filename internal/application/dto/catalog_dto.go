package dto

import (
	"github.com/shopspring/decimal"
)

// OptionValueResponse salida de un valor del catálogo de opciones.
type OptionValueResponse struct {
	ID                  string          `json:"id"`
	Kind                string          `json:"kind"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	ImageRef            string          `json:"image_ref,omitempty"`
	BasePriceAdjustment decimal.Decimal `json:"base_price_adjustment"`
	ColorCode           string          `json:"color_code,omitempty"`
	ColorName           string          `json:"color_name,omitempty"`
	SwatchImageRef      string          `json:"swatch_image_ref,omitempty"`
}

// OptionValueListResponse lista de valores de una categoría.
type OptionValueListResponse struct {
	Kind  string                `json:"kind"`
	Items []OptionValueResponse `json:"items"`
}
