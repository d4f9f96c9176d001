package entity

import "time"

// InventoryItem es una fila derivada del inventario: un SKU ordenable por cada valor
// de opción seleccionado en la configuración del producto. No participa en el precio;
// es una tabla lateral de stock referida por los mismos identificadores de opción.
type InventoryItem struct {
	Key            string
	DisplayName    string
	Kind           CategoryKind
	TotalStock     int64
	AvailableStock int64
	MinStockLevel  int64
	LastUpdated    time.Time
}

// IsLowStock indica si el stock disponible está en o bajo el mínimo configurado.
func (i InventoryItem) IsLowStock() bool {
	return i.AvailableStock <= i.MinStockLevel
}
