package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/application/usecase"
	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio
// ──────────────────────────────────────────────────────────────────────────────

// fakeConfigRepo repositorio en memoria con la misma semántica CAS del adaptador
// PostgreSQL: Save falla con ErrConflict si la revisión persistida no coincide.
type fakeConfigRepo struct {
	configs  map[string]*entity.ProductConfiguration
	products map[string]*repository.ProductInfo
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{
		configs:  make(map[string]*entity.ProductConfiguration),
		products: make(map[string]*repository.ProductInfo),
	}
}

func (f *fakeConfigRepo) GetByProductID(_ context.Context, productID string) (*entity.ProductConfiguration, error) {
	return f.configs[productID], nil
}

func (f *fakeConfigRepo) Save(_ context.Context, cfg *entity.ProductConfiguration, expectedRevision int64) error {
	if stored, ok := f.configs[cfg.ProductID]; ok && stored != cfg && stored.Revision != expectedRevision {
		return domain.ErrConflict
	}
	f.configs[cfg.ProductID] = cfg
	return nil
}

func (f *fakeConfigRepo) GetProductInfo(_ context.Context, productID string) (*repository.ProductInfo, error) {
	return f.products[productID], nil
}

// fakeCatalogRepo catálogo en memoria indexado por ID.
type fakeCatalogRepo struct {
	values map[string]entity.OptionCategoryValue
}

func newFakeCatalogRepo(values ...entity.OptionCategoryValue) *fakeCatalogRepo {
	f := &fakeCatalogRepo{values: make(map[string]entity.OptionCategoryValue)}
	for _, v := range values {
		f.values[v.ID] = v
	}
	return f
}

func (f *fakeCatalogRepo) ListValues(_ context.Context, kind entity.CategoryKind) ([]entity.OptionCategoryValue, error) {
	var out []entity.OptionCategoryValue
	for _, v := range f.values {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetValueByID(_ context.Context, id string) (*entity.OptionCategoryValue, error) {
	v, ok := f.values[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeCatalogRepo) GetValuesByIDs(_ context.Context, ids []string) ([]entity.OptionCategoryValue, error) {
	var out []entity.OptionCategoryValue
	for _, id := range ids {
		if v, ok := f.values[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dims() dto.DimensionRangeDTO {
	return dto.DimensionRangeDTO{
		MinWidth:        decimal.NewFromInt(12),
		MaxWidth:        decimal.NewFromInt(96),
		MinHeight:       decimal.NewFromInt(12),
		MaxHeight:       decimal.NewFromInt(120),
		WidthIncrement:  decimal.NewFromFloat(0.125),
		HeightIncrement: decimal.NewFromFloat(0.125),
	}
}

func buildUseCase(t *testing.T) (*usecase.ConfigurationUseCase, *fakeConfigRepo) {
	t.Helper()
	repo := newFakeConfigRepo()
	catalog := newFakeCatalogRepo(
		entity.OptionCategoryValue{ID: "mount-inside", Kind: entity.KindMountType, Name: "Inside"},
		entity.OptionCategoryValue{ID: "mount-outside", Kind: entity.KindMountType, Name: "Outside"},
		entity.OptionCategoryValue{ID: "ctl-cordless", Kind: entity.KindControlType, Name: "Cordless"},
	)
	return usecase.NewConfigurationUseCase(repo, catalog, decimal.Zero), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Alta y lectura: la configuración nueva arranca en revisión 1 sin selecciones.
func TestConfigurationUseCase_CreateYGet(t *testing.T) {
	uc, _ := buildUseCase(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, "prod-1", dto.CreateConfigurationRequest{Dimensions: dims()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Revision)
	assert.Empty(t, out.Selections)

	got, err := uc.Get(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", got.ProductID)
}

// Crear dos veces para el mismo producto produce conflicto.
func TestConfigurationUseCase_CreateDuplicado(t *testing.T) {
	uc, _ := buildUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "prod-1", dto.CreateConfigurationRequest{Dimensions: dims()})
	require.NoError(t, err)

	_, err = uc.Create(ctx, "prod-1", dto.CreateConfigurationRequest{Dimensions: dims()})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// La primera selección de una categoría queda como default y la revisión avanza.
func TestConfigurationUseCase_AddSelectionPrimeraEsDefault(t *testing.T) {
	uc, _ := buildUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "prod-1", dto.CreateConfigurationRequest{Dimensions: dims()})
	require.NoError(t, err)

	out, err := uc.AddSelection(ctx, "prod-1", dto.SelectionRequest{
		Kind: "MOUNT_TYPE", ValueID: "mount-inside", Revision: created.Revision,
	})
	require.NoError(t, err)
	require.Len(t, out.Selections["MOUNT_TYPE"], 1)
	assert.True(t, out.Selections["MOUNT_TYPE"][0].IsDefault, "la primera selección debe ser default")
	assert.Greater(t, out.Revision, created.Revision, "cada mutación debe avanzar la revisión")
}

// Un valor inexistente en el catálogo, o de otra categoría, se rechaza.
func TestConfigurationUseCase_AddSelectionValorDesconocido(t *testing.T) {
	uc, _ := buildUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "prod-1", dto.CreateConfigurationRequest{Dimensions: dims()})
	require.NoError(t, err)

	_, err = uc.AddSelection(ctx, "prod-1", dto.SelectionRequest{
		Kind: "MOUNT_TYPE", ValueID: "no-existe", Revision: created.Revision,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCategoryValue)

	// "ctl-cordless" existe pero es CONTROL_TYPE, no MOUNT_TYPE.
	_, err = uc.AddSelection(ctx, "prod-1", dto.SelectionRequest{
		Kind: "MOUNT_TYPE", ValueID: "ctl-cordless", Revision: created.Revision,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCategoryValue)
}

// Dos sesiones de vendedor vieron la revisión 1; la segunda mutación con esa
// revisión desfasada produce conflicto y no toca la configuración.
func TestConfigurationUseCase_RevisionDesfasadaProduceConflicto(t *testing.T) {
	uc, repo := buildUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "prod-1", dto.CreateConfigurationRequest{Dimensions: dims()})
	require.NoError(t, err)

	// Sesión A muta con la revisión vigente.
	_, err = uc.AddSelection(ctx, "prod-1", dto.SelectionRequest{
		Kind: "MOUNT_TYPE", ValueID: "mount-inside", Revision: created.Revision,
	})
	require.NoError(t, err)

	// Sesión B llega con la revisión vieja.
	_, err = uc.AddSelection(ctx, "prod-1", dto.SelectionRequest{
		Kind: "MOUNT_TYPE", ValueID: "mount-outside", Revision: created.Revision,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	cfg := repo.configs["prod-1"]
	assert.Len(t, cfg.SelectionsFor(entity.KindMountType), 1,
		"la mutación en conflicto no debe aplicarse")
}

// El ajuste adicional por debajo del piso de plataforma se rechaza.
func TestConfigurationUseCase_AjustePorDebajoDelPiso(t *testing.T) {
	uc, _ := buildUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "prod-1", dto.CreateConfigurationRequest{Dimensions: dims()})
	require.NoError(t, err)

	out, err := uc.AddSelection(ctx, "prod-1", dto.SelectionRequest{
		Kind: "MOUNT_TYPE", ValueID: "mount-inside", Revision: created.Revision,
	})
	require.NoError(t, err)

	_, err = uc.SetAdjustment(ctx, "prod-1", dto.AdjustmentRequest{
		Kind: "MOUNT_TYPE", ValueID: "mount-inside",
		Amount: decimal.NewFromInt(-5), Revision: out.Revision,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "con piso 0 no se admiten ajustes negativos")
}

// Un rango invertido se rechaza al reemplazar dimensiones.
func TestConfigurationUseCase_RangoInvertido(t *testing.T) {
	uc, _ := buildUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "prod-1", dto.CreateConfigurationRequest{Dimensions: dims()})
	require.NoError(t, err)

	bad := dims()
	bad.MinWidth, bad.MaxWidth = bad.MaxWidth, bad.MinWidth
	_, err = uc.SetDimensions(ctx, "prod-1", dto.SetDimensionsRequest{
		Dimensions: bad, Revision: created.Revision,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDimensionRange)
}

// Producto sin configuración: toda operación responde no encontrado.
func TestConfigurationUseCase_ProductoInexistente(t *testing.T) {
	uc, _ := buildUseCase(t)

	_, err := uc.Get(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
