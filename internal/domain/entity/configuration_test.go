package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func validRange() entity.DimensionRange {
	return entity.DimensionRange{
		MinWidth:        decimal.NewFromInt(24),
		MaxWidth:        decimal.NewFromInt(96),
		MinHeight:       decimal.NewFromInt(36),
		MaxHeight:       decimal.NewFromInt(120),
		WidthIncrement:  decimal.NewFromFloat(0.125),
		HeightIncrement: decimal.NewFromFloat(0.125),
	}
}

func newConfig(t *testing.T) *entity.ProductConfiguration {
	t.Helper()
	cfg, err := entity.NewProductConfiguration("prod-1", validRange())
	require.NoError(t, err, "la configuración con rango válido debe construirse")
	return cfg
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante de default
// ──────────────────────────────────────────────────────────────────────────────

// La primera selección de una categoría queda como default automáticamente.
func TestAddSelection_PrimeraSeleccionEsDefault(t *testing.T) {
	cfg := newConfig(t)

	require.NoError(t, cfg.AddSelection(entity.KindMountType, "inside"))
	require.NoError(t, cfg.AddSelection(entity.KindMountType, "outside"))

	def := cfg.DefaultSelection(entity.KindMountType)
	require.NotNil(t, def, "la categoría con selecciones debe tener default")
	assert.Equal(t, "inside", def.ValueID, "la primera selección debe ser el default")
	assert.NoError(t, cfg.CheckDefaultInvariant())
}

func TestAddSelection_DuplicadoFalla(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.AddSelection(entity.KindFabric, "tela-blanca"))

	err := cfg.AddSelection(entity.KindFabric, "tela-blanca")
	assert.ErrorIs(t, err, domain.ErrDuplicateSelection,
		"agregar dos veces el mismo valor debe fallar")
}

// Escenario de referencia: con selecciones [A(default), B], remover A debe fallar;
// tras SetDefault(B), remover A debe dejar [B(default)].
func TestRemoveSelection_SecuenciaConDefault(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.AddSelection(entity.KindControlType, "A"))
	require.NoError(t, cfg.AddSelection(entity.KindControlType, "B"))

	err := cfg.RemoveSelection(entity.KindControlType, "A")
	assert.ErrorIs(t, err, domain.ErrCannotRemoveDefault,
		"remover el default con otras selecciones presentes debe fallar")

	require.NoError(t, cfg.SetDefault(entity.KindControlType, "B"))
	require.NoError(t, cfg.RemoveSelection(entity.KindControlType, "A"))

	sels := cfg.SelectionsFor(entity.KindControlType)
	require.Len(t, sels, 1)
	assert.Equal(t, "B", sels[0].ValueID)
	assert.True(t, sels[0].IsDefault, "B debe quedar como único default")
	assert.NoError(t, cfg.CheckDefaultInvariant())
}

// Remover la única selección (aunque sea default) vacía la categoría sin restricción.
func TestRemoveSelection_UltimaSeleccionVaciaCategoria(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.AddSelection(entity.KindHeadrail, "standard"))

	require.NoError(t, cfg.RemoveSelection(entity.KindHeadrail, "standard"))
	assert.Empty(t, cfg.SelectionsFor(entity.KindHeadrail))
	assert.Nil(t, cfg.DefaultSelection(entity.KindHeadrail))
}

func TestRemoveSelection_NoSeleccionadoFalla(t *testing.T) {
	cfg := newConfig(t)
	err := cfg.RemoveSelection(entity.KindHeadrail, "no-existe")
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)
}

func TestSetDefault_LimpiaElResto(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.AddSelection(entity.KindFabric, "f1"))
	require.NoError(t, cfg.AddSelection(entity.KindFabric, "f2"))
	require.NoError(t, cfg.AddSelection(entity.KindFabric, "f3"))

	require.NoError(t, cfg.SetDefault(entity.KindFabric, "f3"))

	defaults := 0
	for _, s := range cfg.SelectionsFor(entity.KindFabric) {
		if s.IsDefault {
			defaults++
			assert.Equal(t, "f3", s.ValueID)
		}
	}
	assert.Equal(t, 1, defaults, "debe haber exactamente un default")
}

func TestSetDefault_NoSeleccionadoFalla(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.AddSelection(entity.KindFabric, "f1"))
	err := cfg.SetDefault(entity.KindFabric, "f9")
	assert.ErrorIs(t, err, domain.ErrSelectionNotFound)
}

// El invariante se sostiene para secuencias mezcladas de add/remove/setDefault.
func TestDefaultInvariant_SecuenciaMixta(t *testing.T) {
	cfg := newConfig(t)
	kind := entity.KindSpecialty

	require.NoError(t, cfg.AddSelection(kind, "s1"))
	require.NoError(t, cfg.AddSelection(kind, "s2"))
	require.NoError(t, cfg.AddSelection(kind, "s3"))
	require.NoError(t, cfg.SetDefault(kind, "s2"))
	require.NoError(t, cfg.RemoveSelection(kind, "s1"))
	require.NoError(t, cfg.AddSelection(kind, "s4"))
	require.NoError(t, cfg.SetDefault(kind, "s4"))
	require.NoError(t, cfg.RemoveSelection(kind, "s2"))

	assert.NoError(t, cfg.CheckDefaultInvariant())
	def := cfg.DefaultSelection(kind)
	require.NotNil(t, def)
	assert.Equal(t, "s4", def.ValueID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes y dimensiones
// ──────────────────────────────────────────────────────────────────────────────

func TestSetAdditionalPriceAdjustment_BajoElPisoFalla(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.AddSelection(entity.KindControlType, "motor"))

	err := cfg.SetAdditionalPriceAdjustment(
		entity.KindControlType, "motor", decimal.NewFromInt(-5), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount,
		"un ajuste bajo el piso de la plataforma debe rechazarse")
}

func TestSetAdditionalPriceAdjustment_Aplica(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.AddSelection(entity.KindControlType, "motor"))

	amount := decimal.NewFromInt(75)
	require.NoError(t, cfg.SetAdditionalPriceAdjustment(
		entity.KindControlType, "motor", amount, decimal.Zero))

	sel := cfg.FindSelection(entity.KindControlType, "motor")
	require.NotNil(t, sel)
	assert.True(t, sel.AdditionalPriceAdjustment.Equal(amount))
}

// Escenario de referencia: min >= max debe fallar.
func TestSetDimensionRange_MinMayorQueMaxFalla(t *testing.T) {
	cfg := newConfig(t)
	bad := validRange()
	bad.MinWidth = decimal.NewFromInt(40)
	bad.MaxWidth = decimal.NewFromInt(30)

	err := cfg.SetDimensionRange(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensionRange)
}

func TestSetDimensionRange_IncrementoNoPositivoFalla(t *testing.T) {
	cfg := newConfig(t)
	bad := validRange()
	bad.WidthIncrement = decimal.Zero

	err := cfg.SetDimensionRange(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensionRange)
}

func TestSetRoomRecommendations_NivelFueraDeRangoFalla(t *testing.T) {
	cfg := newConfig(t)
	err := cfg.SetRoomRecommendations([]entity.RoomRecommendation{
		{RoomKind: "bedroom", Level: 6},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cada mutación exitosa incrementa Revision (sello de versión optimista).
func TestRevision_IncrementaEnCadaMutacion(t *testing.T) {
	cfg := newConfig(t)
	before := cfg.Revision

	require.NoError(t, cfg.AddSelection(entity.KindMountType, "inside"))
	require.NoError(t, cfg.SetDimensionRange(validRange()))

	assert.Equal(t, before+2, cfg.Revision)
}

func TestRevision_NoIncrementaEnMutacionFallida(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.AddSelection(entity.KindMountType, "inside"))
	before := cfg.Revision

	_ = cfg.AddSelection(entity.KindMountType, "inside") // duplicado
	assert.Equal(t, before, cfg.Revision, "una mutación rechazada no debe tocar Revision")
}
