package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
)

// ConfigurationUseCase edición de la configuración de producto (lado vendedor).
// Cada operación verifica el sello de revisión que la UI vio por última vez y
// persiste con compare-and-swap: dos sesiones de vendedor editando el mismo producto
// no se pisan en silencio (la segunda recibe ErrConflict y debe recargar).
type ConfigurationUseCase struct {
	repo            repository.ConfigurationRepository
	catalogRepo     repository.CatalogRepository
	adjustmentFloor decimal.Decimal
}

// NewConfigurationUseCase construye el caso de uso. floor es el piso de plataforma
// para ajustes adicionales (0 por defecto).
func NewConfigurationUseCase(
	repo repository.ConfigurationRepository,
	catalogRepo repository.CatalogRepository,
	floor decimal.Decimal,
) *ConfigurationUseCase {
	return &ConfigurationUseCase{repo: repo, catalogRepo: catalogRepo, adjustmentFloor: floor}
}

// Create crea la configuración de un producto con su rango de dimensiones.
func (uc *ConfigurationUseCase) Create(ctx context.Context, productID string, in dto.CreateConfigurationRequest) (*dto.ConfigurationResponse, error) {
	existing, err := uc.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	cfg, err := entity.NewProductConfiguration(productID, toDimensionRange(in.Dimensions))
	if err != nil {
		return nil, err
	}
	// Alta: la revisión esperada es la propia (no hay fila previa que comparar).
	if err := uc.repo.Save(ctx, cfg, cfg.Revision); err != nil {
		return nil, err
	}
	return toConfigurationResponse(cfg), nil
}

// Get devuelve la configuración de un producto.
func (uc *ConfigurationUseCase) Get(ctx context.Context, productID string) (*dto.ConfigurationResponse, error) {
	cfg, err := uc.loadConfig(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toConfigurationResponse(cfg), nil
}

// AddSelection agrega un valor del catálogo a una categoría del producto.
// Valida que el valor exista en el catálogo y sea del kind indicado.
func (uc *ConfigurationUseCase) AddSelection(ctx context.Context, productID string, in dto.SelectionRequest) (*dto.ConfigurationResponse, error) {
	kind := entity.CategoryKind(in.Kind)
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	value, err := uc.catalogRepo.GetValueByID(ctx, in.ValueID)
	if err != nil {
		return nil, err
	}
	if value == nil || value.Kind != kind {
		return nil, domain.ErrUnknownCategoryValue
	}
	return uc.mutate(ctx, productID, in.Revision, func(cfg *entity.ProductConfiguration) error {
		return cfg.AddSelection(kind, in.ValueID)
	})
}

// RemoveSelection elimina un valor seleccionado de una categoría.
func (uc *ConfigurationUseCase) RemoveSelection(ctx context.Context, productID string, in dto.SelectionRequest) (*dto.ConfigurationResponse, error) {
	kind := entity.CategoryKind(in.Kind)
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(ctx, productID, in.Revision, func(cfg *entity.ProductConfiguration) error {
		return cfg.RemoveSelection(kind, in.ValueID)
	})
}

// SetDefault marca un valor seleccionado como default de su categoría.
func (uc *ConfigurationUseCase) SetDefault(ctx context.Context, productID string, in dto.SelectionRequest) (*dto.ConfigurationResponse, error) {
	kind := entity.CategoryKind(in.Kind)
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(ctx, productID, in.Revision, func(cfg *entity.ProductConfiguration) error {
		return cfg.SetDefault(kind, in.ValueID)
	})
}

// SetAdjustment fija el ajuste adicional de una selección (sujeto al piso de plataforma).
func (uc *ConfigurationUseCase) SetAdjustment(ctx context.Context, productID string, in dto.AdjustmentRequest) (*dto.ConfigurationResponse, error) {
	kind := entity.CategoryKind(in.Kind)
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(ctx, productID, in.Revision, func(cfg *entity.ProductConfiguration) error {
		return cfg.SetAdditionalPriceAdjustment(kind, in.ValueID, in.Amount, uc.adjustmentFloor)
	})
}

// SetDimensions reemplaza el rango de dimensiones del producto.
func (uc *ConfigurationUseCase) SetDimensions(ctx context.Context, productID string, in dto.SetDimensionsRequest) (*dto.ConfigurationResponse, error) {
	return uc.mutate(ctx, productID, in.Revision, func(cfg *entity.ProductConfiguration) error {
		return cfg.SetDimensionRange(toDimensionRange(in.Dimensions))
	})
}

// SetRooms reemplaza las recomendaciones de ambiente del producto.
func (uc *ConfigurationUseCase) SetRooms(ctx context.Context, productID string, in dto.SetRoomsRequest) (*dto.ConfigurationResponse, error) {
	rooms := make([]entity.RoomRecommendation, 0, len(in.Rooms))
	for _, r := range in.Rooms {
		rooms = append(rooms, entity.RoomRecommendation{RoomKind: r.RoomKind, Level: r.Level, Note: r.Note})
	}
	return uc.mutate(ctx, productID, in.Revision, func(cfg *entity.ProductConfiguration) error {
		return cfg.SetRoomRecommendations(rooms)
	})
}

// mutate carga, verifica el sello optimista, aplica la operación de dominio y
// persiste con CAS sobre la revisión cargada.
func (uc *ConfigurationUseCase) mutate(
	ctx context.Context,
	productID string,
	seenRevision int64,
	op func(*entity.ProductConfiguration) error,
) (*dto.ConfigurationResponse, error) {
	cfg, err := uc.loadConfig(ctx, productID)
	if err != nil {
		return nil, err
	}
	if cfg.Revision != seenRevision {
		return nil, domain.ErrConflict
	}
	loaded := cfg.Revision
	if err := op(cfg); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, cfg, loaded); err != nil {
		return nil, err
	}
	return toConfigurationResponse(cfg), nil
}

func (uc *ConfigurationUseCase) loadConfig(ctx context.Context, productID string) (*entity.ProductConfiguration, error) {
	cfg, err := uc.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

// ── mapeos ────────────────────────────────────────────────────────────────────

func toDimensionRange(d dto.DimensionRangeDTO) entity.DimensionRange {
	return entity.DimensionRange{
		MinWidth:        d.MinWidth,
		MaxWidth:        d.MaxWidth,
		MinHeight:       d.MinHeight,
		MaxHeight:       d.MaxHeight,
		WidthIncrement:  d.WidthIncrement,
		HeightIncrement: d.HeightIncrement,
	}
}

func toDimensionRangeDTO(r entity.DimensionRange) dto.DimensionRangeDTO {
	return dto.DimensionRangeDTO{
		MinWidth:        r.MinWidth,
		MaxWidth:        r.MaxWidth,
		MinHeight:       r.MinHeight,
		MaxHeight:       r.MaxHeight,
		WidthIncrement:  r.WidthIncrement,
		HeightIncrement: r.HeightIncrement,
	}
}

func toConfigurationResponse(cfg *entity.ProductConfiguration) *dto.ConfigurationResponse {
	selections := make(map[string][]dto.SelectedOptionResponse, len(cfg.Selections))
	for kind, sels := range cfg.Selections {
		out := make([]dto.SelectedOptionResponse, 0, len(sels))
		for _, s := range sels {
			out = append(out, dto.SelectedOptionResponse{
				ValueID:                   s.ValueID,
				IsDefault:                 s.IsDefault,
				AdditionalPriceAdjustment: s.AdditionalPriceAdjustment,
			})
		}
		selections[string(kind)] = out
	}
	rooms := make([]dto.RoomRecommendationDTO, 0, len(cfg.Rooms))
	for _, r := range cfg.Rooms {
		rooms = append(rooms, dto.RoomRecommendationDTO{RoomKind: r.RoomKind, Level: r.Level, Note: r.Note})
	}
	return &dto.ConfigurationResponse{
		ProductID:  cfg.ProductID,
		Revision:   cfg.Revision,
		Dimensions: toDimensionRangeDTO(cfg.Dimensions),
		Selections: selections,
		Rooms:      rooms,
		CreatedAt:  cfg.CreatedAt,
		UpdatedAt:  cfg.UpdatedAt,
	}
}
