package usecase

import (
	"context"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/inventory"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
)

// InventoryUseCase administra el libro de inventario derivado. El Ledger en memoria
// es la autoridad de serialización de ajustes; el repositorio es el borde de
// persistencia (Persist tras cada mutación, Reload al arrancar).
type InventoryUseCase struct {
	ledger      *inventory.Ledger
	repo        repository.InventoryRepository
	configRepo  repository.ConfigurationRepository
	catalogRepo repository.CatalogRepository
}

// NewInventoryUseCase construye el caso de uso recargando el libro persistido.
func NewInventoryUseCase(
	ctx context.Context,
	repo repository.InventoryRepository,
	configRepo repository.ConfigurationRepository,
	catalogRepo repository.CatalogRepository,
) (*InventoryUseCase, error) {
	items, err := repo.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return &InventoryUseCase{
		ledger:      inventory.NewLedger(items),
		repo:        repo,
		configRepo:  configRepo,
		catalogRepo: catalogRepo,
	}, nil
}

// GenerateForProduct aplana la configuración del producto en filas de inventario,
// las agrega al libro y persiste. Filas existentes con la misma clave se conservan
// (el stock ya mutado no se pisa).
func (uc *InventoryUseCase) GenerateForProduct(ctx context.Context, productID string, in dto.GenerateInventoryRequest) (*dto.InventoryListResponse, error) {
	if in.InitialStock < 0 || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	cfg, err := uc.configRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	catalog, err := SnapshotCatalog(ctx, uc.catalogRepo, cfg)
	if err != nil {
		return nil, err
	}

	generated := inventory.Generate(cfg, catalog, in.InitialStock, in.MinStockLevel)
	existing := make(map[string]bool)
	for _, it := range uc.ledger.Items() {
		existing[it.Key] = true
	}
	var merged []entity.InventoryItem
	merged = append(merged, uc.ledger.Items()...)
	for _, it := range generated {
		if !existing[it.Key] {
			merged = append(merged, it)
		}
	}
	uc.ledger = inventory.NewLedger(merged)

	if err := uc.repo.Persist(ctx, uc.ledger.Items()); err != nil {
		return nil, err
	}
	return uc.list(), nil
}

// Adjust ajusta el stock disponible de una fila y persiste el libro.
func (uc *InventoryUseCase) Adjust(ctx context.Context, in dto.AdjustInventoryRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.ledger.Adjust(in.Key, in.Delta)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Persist(ctx, uc.ledger.Items()); err != nil {
		return nil, err
	}
	out := toInventoryItemResponse(item)
	return &out, nil
}

// List devuelve todas las filas del libro.
func (uc *InventoryUseCase) List(_ context.Context) *dto.InventoryListResponse {
	return uc.list()
}

// LowStock devuelve las filas en o bajo su nivel mínimo.
func (uc *InventoryUseCase) LowStock(_ context.Context) *dto.InventoryListResponse {
	items := uc.ledger.LowStock()
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toInventoryItemResponse(it))
	}
	return &dto.InventoryListResponse{Items: out, Page: dto.PageResponse{Total: len(out)}}
}

func (uc *InventoryUseCase) list() *dto.InventoryListResponse {
	items := uc.ledger.Items()
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toInventoryItemResponse(it))
	}
	return &dto.InventoryListResponse{Items: out, Page: dto.PageResponse{Total: len(out)}}
}

func toInventoryItemResponse(it entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		Key:            it.Key,
		DisplayName:    it.DisplayName,
		Kind:           string(it.Kind),
		TotalStock:     it.TotalStock,
		AvailableStock: it.AvailableStock,
		MinStockLevel:  it.MinStockLevel,
		LowStock:       it.IsLowStock(),
		LastUpdated:    it.LastUpdated,
	}
}
