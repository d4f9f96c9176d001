package dto

import "time"

// GenerateInventoryRequest genera el inventario derivado de la configuración de un producto.
type GenerateInventoryRequest struct {
	InitialStock  int64 `json:"initial_stock" validate:"min=0"`
	MinStockLevel int64 `json:"min_stock_level" validate:"min=0"`
}

// AdjustInventoryRequest ajusta el stock disponible de una fila (delta con signo).
type AdjustInventoryRequest struct {
	Key   string `json:"key" validate:"required"`
	Delta int64  `json:"delta"`
}

// InventoryItemResponse fila del inventario derivado.
type InventoryItemResponse struct {
	Key            string    `json:"key"`
	DisplayName    string    `json:"display_name"`
	Kind           string    `json:"kind"`
	TotalStock     int64     `json:"total_stock"`
	AvailableStock int64     `json:"available_stock"`
	MinStockLevel  int64     `json:"min_stock_level"`
	LowStock       bool      `json:"low_stock"`
	LastUpdated    time.Time `json:"last_updated"`
}

// InventoryListResponse listado del inventario.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
