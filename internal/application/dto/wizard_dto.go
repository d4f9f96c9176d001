package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenSessionRequest abre una sesión del asistente para un producto configurable.
type OpenSessionRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// DimensionDTO medida en pulgadas con parte entera y fracción.
type DimensionDTO struct {
	Whole    int             `json:"whole"`
	Fraction decimal.Decimal `json:"fraction"`
}

// SessionResponse estado visible de la sesión del asistente.
type SessionResponse struct {
	SessionID     string            `json:"session_id"`
	ProductID     string            `json:"product_id"`
	CurrentStep   string            `json:"current_step"`
	StepCompleted map[string]bool   `json:"step_completed"`
	Room          string            `json:"room,omitempty"`
	Width         DimensionDTO      `json:"width"`
	Height        DimensionDTO      `json:"height"`
	Chosen        map[string]string `json:"chosen"`
	Quantity      int               `json:"quantity"`
	Closed        bool              `json:"closed"`
}

// ChooseRoomRequest paso Room.
type ChooseRoomRequest struct {
	Room string `json:"room" validate:"required"`
}

// ChooseOptionRequest elección explícita de un valor (Mount, Color u Options).
type ChooseOptionRequest struct {
	Kind    string `json:"kind" validate:"required"`
	ValueID string `json:"value_id" validate:"required"`
}

// ChooseValueRequest elección de un valor en los pasos con categoría implícita
// (Mount y Color).
type ChooseValueRequest struct {
	ValueID string `json:"value_id" validate:"required"`
}

// SetSessionDimensionsRequest paso Dimensions.
type SetSessionDimensionsRequest struct {
	Width  DimensionDTO `json:"width"`
	Height DimensionDTO `json:"height"`
}

// AddToCartRequest acción terminal del asistente.
type AddToCartRequest struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

// CartLineItemResponse línea emitida al carrito externo.
type CartLineItemResponse struct {
	ID            string            `json:"id"`
	ProductID     string            `json:"product_id"`
	Width         decimal.Decimal   `json:"width"`
	Height        decimal.Decimal   `json:"height"`
	ChosenOptions map[string]string `json:"chosen_options"`
	Quantity      int               `json:"quantity"`
	UnitPrice     decimal.Decimal   `json:"unit_price"`
	CreatedAt     time.Time         `json:"created_at"`
}
