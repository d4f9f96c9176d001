package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DimensionRangeDTO rango continuo de dimensiones (pulgadas).
type DimensionRangeDTO struct {
	MinWidth        decimal.Decimal `json:"min_width"`
	MaxWidth        decimal.Decimal `json:"max_width"`
	MinHeight       decimal.Decimal `json:"min_height"`
	MaxHeight       decimal.Decimal `json:"max_height"`
	WidthIncrement  decimal.Decimal `json:"width_increment"`
	HeightIncrement decimal.Decimal `json:"height_increment"`
}

// SelectedOptionResponse una selección de la configuración.
type SelectedOptionResponse struct {
	ValueID                   string          `json:"value_id"`
	IsDefault                 bool            `json:"is_default"`
	AdditionalPriceAdjustment decimal.Decimal `json:"additional_price_adjustment"`
}

// RoomRecommendationDTO recomendación de ambiente (1..5).
type RoomRecommendationDTO struct {
	RoomKind string `json:"room_kind" validate:"required"`
	Level    int    `json:"level" validate:"min=1,max=5"`
	Note     string `json:"note,omitempty"`
}

// ConfigurationResponse configuración completa de un producto.
type ConfigurationResponse struct {
	ProductID  string                              `json:"product_id"`
	Revision   int64                               `json:"revision"`
	Dimensions DimensionRangeDTO                   `json:"dimensions"`
	Selections map[string][]SelectedOptionResponse `json:"selections"`
	Rooms      []RoomRecommendationDTO             `json:"rooms,omitempty"`
	CreatedAt  time.Time                           `json:"created_at"`
	UpdatedAt  time.Time                           `json:"updated_at"`
}

// CreateConfigurationRequest alta de configuración para un producto.
type CreateConfigurationRequest struct {
	Dimensions DimensionRangeDTO `json:"dimensions" validate:"required"`
}

// SelectionRequest alta/baja de una selección. Revision es la última revisión que vio
// la UI del vendedor (sello optimista); una revisión desfasada produce 409.
type SelectionRequest struct {
	Kind     string `json:"kind" validate:"required"`
	ValueID  string `json:"value_id" validate:"required"`
	Revision int64  `json:"revision" validate:"min=1"`
}

// AdjustmentRequest fija el ajuste adicional de una selección.
type AdjustmentRequest struct {
	Kind     string          `json:"kind" validate:"required"`
	ValueID  string          `json:"value_id" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Revision int64           `json:"revision" validate:"min=1"`
}

// SetDimensionsRequest reemplaza el rango de dimensiones.
type SetDimensionsRequest struct {
	Dimensions DimensionRangeDTO `json:"dimensions" validate:"required"`
	Revision   int64             `json:"revision" validate:"min=1"`
}

// SetRoomsRequest reemplaza las recomendaciones de ambiente.
type SetRoomsRequest struct {
	Rooms    []RoomRecommendationDTO `json:"rooms"`
	Revision int64                   `json:"revision" validate:"min=1"`
}
