package repository

import (
	"context"

	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

// CatalogRepository define el puerto de lectura del Option Category Store (catálogo
// global de valores por categoría). Solo lectura: otros sistemas son dueños del alta.
type CatalogRepository interface {
	ListValues(ctx context.Context, kind entity.CategoryKind) ([]entity.OptionCategoryValue, error)
	GetValueByID(ctx context.Context, id string) (*entity.OptionCategoryValue, error)
	// GetValuesByIDs resuelve un lote de IDs en una sola consulta (para armar el
	// snapshot de catálogo que consumen el motor de precios y el inventario).
	GetValuesByIDs(ctx context.Context, ids []string) ([]entity.OptionCategoryValue, error)
}
