package wizard_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/application/wizard"
	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
	domainwizard "github.com/jhoicas/persianas-api/internal/domain/wizard"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeConfigRepo struct {
	cfg  *entity.ProductConfiguration
	info *repository.ProductInfo
}

func (f *fakeConfigRepo) GetByProductID(_ context.Context, productID string) (*entity.ProductConfiguration, error) {
	if f.cfg == nil || f.cfg.ProductID != productID {
		return nil, nil
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) Save(_ context.Context, _ *entity.ProductConfiguration, _ int64) error {
	return nil
}

func (f *fakeConfigRepo) GetProductInfo(_ context.Context, productID string) (*repository.ProductInfo, error) {
	if f.info == nil || f.info.ProductID != productID {
		return nil, nil
	}
	return f.info, nil
}

type fakeCatalogRepo struct {
	values map[string]entity.OptionCategoryValue
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

// fakeCartSink registra las líneas emitidas por AddToCart.
type fakeCartSink struct {
	items []*entity.CartLineItem
}

func (f *fakeCartSink) AddLineItem(_ context.Context, item *entity.CartLineItem) error {
	f.items = append(f.items, item)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: persiana con mount default, dos telas y control motorizado
// ──────────────────────────────────────────────────────────────────────────────

func buildFixture(t *testing.T) (*wizard.SessionUseCase, *fakeCartSink) {
	t.Helper()

	cfg, err := entity.NewProductConfiguration("prod-1", entity.DimensionRange{
		MinWidth:        decimal.NewFromInt(12),
		MaxWidth:        decimal.NewFromInt(96),
		MinHeight:       decimal.NewFromInt(12),
		MaxHeight:       decimal.NewFromInt(120),
		WidthIncrement:  decimal.NewFromFloat(0.125),
		HeightIncrement: decimal.NewFromFloat(0.125),
	})
	require.NoError(t, err)
	require.NoError(t, cfg.AddSelection(entity.KindMountType, "mount-inside"))
	require.NoError(t, cfg.AddSelection(entity.KindFabric, "fab-solar"))
	require.NoError(t, cfg.AddSelection(entity.KindFabric, "fab-blackout"))
	require.NoError(t, cfg.AddSelection(entity.KindControlType, "ctl-motor"))

	catalog := &fakeCatalogRepo{values: map[string]entity.OptionCategoryValue{
		"mount-inside": {ID: "mount-inside", Kind: entity.KindMountType, Name: "Inside"},
		"fab-solar":    {ID: "fab-solar", Kind: entity.KindFabric, Name: "Solar", ColorCode: "BL-01", ColorName: "Blanco"},
		"fab-blackout": {ID: "fab-blackout", Kind: entity.KindFabric, Name: "Blackout", ColorCode: "GR-02", ColorName: "Grafito", BasePriceAdjustment: decimal.NewFromInt(20)},
		"ctl-motor":    {ID: "ctl-motor", Kind: entity.KindControlType, Name: "Motorizado", BasePriceAdjustment: decimal.NewFromInt(75)},
	}}
	repo := &fakeConfigRepo{
		cfg:  cfg,
		info: &repository.ProductInfo{ProductID: "prod-1", Name: "Persiana Enrollable", BasePrice: decimal.NewFromInt(100)},
	}
	sink := &fakeCartSink{}
	uc := wizard.NewSessionUseCase(repo, catalog, sink, nil, decimal.NewFromFloat(0.10))
	return uc, sink
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Abrir una sesión arranca en Room con los defaults de la configuración pre-cargados.
func TestSessionUseCase_OpenPrecargaDefaults(t *testing.T) {
	uc, _ := buildFixture(t)

	out, err := uc.Open(context.Background(), dto.OpenSessionRequest{ProductID: "prod-1"})
	require.NoError(t, err)
	assert.Equal(t, string(domainwizard.StepRoom), out.CurrentStep)
	assert.Equal(t, "mount-inside", out.Chosen["MOUNT_TYPE"], "el mount default debe venir pre-cargado")
	assert.True(t, out.StepCompleted["MOUNT"], "el default pre-cargado completa el paso Mount")
	assert.False(t, out.StepCompleted["COLOR"], "Color exige elección explícita")
}

// Producto sin configuración publicada: no se abre sesión.
func TestSessionUseCase_OpenProductoInexistente(t *testing.T) {
	uc, _ := buildFixture(t)

	_, err := uc.Open(context.Background(), dto.OpenSessionRequest{ProductID: "prod-999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Next no avanza mientras el paso actual esté incompleto.
func TestSessionUseCase_NextConPasoIncompleto(t *testing.T) {
	uc, _ := buildFixture(t)
	ctx := context.Background()

	opened, err := uc.Open(ctx, dto.OpenSessionRequest{ProductID: "prod-1"})
	require.NoError(t, err)

	out, err := uc.Next(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, string(domainwizard.StepRoom), out.CurrentStep,
		"sin ambiente elegido la sesión permanece en Room")
}

// Recorrido completo hasta Summary y emisión al carrito; la sesión se descarta.
func TestSessionUseCase_RecorridoCompletoYAddToCart(t *testing.T) {
	uc, sink := buildFixture(t)
	ctx := context.Background()

	opened, err := uc.Open(ctx, dto.OpenSessionRequest{ProductID: "prod-1"})
	require.NoError(t, err)
	id := opened.SessionID

	_, err = uc.ChooseRoom(ctx, id, dto.ChooseRoomRequest{Room: "dormitorio"})
	require.NoError(t, err)
	_, err = uc.Next(ctx, id) // Room → Mount
	require.NoError(t, err)
	_, err = uc.Next(ctx, id) // Mount → Color (default pre-cargado)
	require.NoError(t, err)
	_, err = uc.ChooseOption(ctx, id, dto.ChooseOptionRequest{Kind: "FABRIC", ValueID: "fab-blackout"})
	require.NoError(t, err)
	_, err = uc.Next(ctx, id) // Color → Dimensions
	require.NoError(t, err)
	_, err = uc.SetDimensions(ctx, id, dto.SetSessionDimensionsRequest{
		Width:  dto.DimensionDTO{Whole: 24},
		Height: dto.DimensionDTO{Whole: 36},
	})
	require.NoError(t, err)
	_, err = uc.Next(ctx, id) // Dimensions → Options
	require.NoError(t, err)
	_, err = uc.ChooseOption(ctx, id, dto.ChooseOptionRequest{Kind: "CONTROL_TYPE", ValueID: "ctl-motor"})
	require.NoError(t, err)
	out, err := uc.Next(ctx, id) // Options → Summary
	require.NoError(t, err)
	require.Equal(t, string(domainwizard.StepSummary), out.CurrentStep)

	quote, err := uc.Quote(ctx, id)
	require.NoError(t, err)
	assert.True(t, quote.Total.GreaterThan(decimal.NewFromInt(100)),
		"la cotización debe superar el precio base con tela y motor elegidos")

	item, err := uc.AddToCart(ctx, id, dto.AddToCartRequest{Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.UnitPrice.Equal(quote.Total), "la línea lleva el total cotizado")

	require.Len(t, sink.items, 1, "la línea debe emitirse al carrito externo")

	_, err = uc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la sesión se descarta tras agregar al carrito")
}

// Elegir un valor que la configuración no seleccionó se rechaza.
func TestSessionUseCase_ChooseOptionValorNoSeleccionado(t *testing.T) {
	uc, _ := buildFixture(t)
	ctx := context.Background()

	opened, err := uc.Open(ctx, dto.OpenSessionRequest{ProductID: "prod-1"})
	require.NoError(t, err)

	_, err = uc.ChooseOption(ctx, opened.SessionID, dto.ChooseOptionRequest{
		Kind: "FABRIC", ValueID: "fab-inexistente",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCategoryValue)
}

// Abandonar descarta la sesión sin emitir nada.
func TestSessionUseCase_Abandon(t *testing.T) {
	uc, sink := buildFixture(t)
	ctx := context.Background()

	opened, err := uc.Open(ctx, dto.OpenSessionRequest{ProductID: "prod-1"})
	require.NoError(t, err)

	require.NoError(t, uc.Abandon(ctx, opened.SessionID))
	assert.Empty(t, sink.items)

	_, err = uc.Get(ctx, opened.SessionID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Abandon(ctx, opened.SessionID), domain.ErrNotFound)
}
