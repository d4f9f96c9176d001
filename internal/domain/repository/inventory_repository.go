package repository

import (
	"context"

	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia del inventario derivado.
// El libro (Ledger) es la autoridad en memoria; Persist/Reload son el borde externo.
type InventoryRepository interface {
	Persist(ctx context.Context, items []entity.InventoryItem) error
	Reload(ctx context.Context) ([]entity.InventoryItem, error)
}
