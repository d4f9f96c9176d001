package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

// ProductInfo es lo mínimo que el núcleo necesita del producto dueño de la
// configuración: su precio base declarado. El CRUD de productos es externo.
type ProductInfo struct {
	ProductID string
	Name      string
	BasePrice decimal.Decimal
}

// ConfigurationRepository define el puerto de persistencia para ProductConfiguration.
// Save es compare-and-swap sobre Revision: si la fila persistida tiene una revisión
// distinta a expectedRevision, la escritura falla con domain.ErrConflict (edición
// concurrente de otra sesión de vendedor).
type ConfigurationRepository interface {
	GetByProductID(ctx context.Context, productID string) (*entity.ProductConfiguration, error)
	Save(ctx context.Context, cfg *entity.ProductConfiguration, expectedRevision int64) error
	GetProductInfo(ctx context.Context, productID string) (*ProductInfo, error)
}
