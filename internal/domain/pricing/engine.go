// Package pricing implementa el motor de precios dinámicos para persianas a medida.
//
// El precio final de una persiana configurada se compone de:
//
//	Total = PrecioBase + AjustePorTamaño + Σ AjustePorCategoría
//
//	AjustePorTamaño   = PrecioBase × max(0, (piesExtraAncho + piesExtraAlto) × 0.10)
//	                    (10% del precio base por cada pie lineal acumulado por encima
//	                    del mínimo declarado en cada eje)
//	AjustePorCategoría = AjusteBase(valor de catálogo) + AjusteAdicional(selección)
//
// Toda la aritmética usa decimal.Decimal; solo el total se redondea a 2 decimales
// para visualización. El motor es una función pura: no hace I/O ni muta la
// configuración.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

// Catalog resuelve IDs de valores de opción contra el catálogo (Option Category Store).
type Catalog interface {
	ValueByID(id string) (entity.OptionCategoryValue, bool)
}

// CategoryLine es el término de una categoría dentro del desglose de precio.
type CategoryLine struct {
	Kind                 entity.CategoryKind
	ValueID              string
	ValueName            string
	BaseAdjustment       decimal.Decimal
	AdditionalAdjustment decimal.Decimal
	Subtotal             decimal.Decimal
}

// Breakdown expone cada término del cálculo por separado (para UI) más el total.
type Breakdown struct {
	BasePrice      decimal.Decimal
	Width          decimal.Decimal
	Height         decimal.Decimal
	SizeRatio      decimal.Decimal
	SizeAdjustment decimal.Decimal
	Categories     []CategoryLine
	Total          decimal.Decimal // redondeado a 2 decimales
}

// CategoryTotal devuelve la suma de los ajustes por categoría.
func (b *Breakdown) CategoryTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range b.Categories {
		sum = sum.Add(c.Subtotal)
	}
	return sum
}

var (
	twelve = decimal.NewFromInt(12)

	// DefaultSizeRatePerFoot: 10% del precio base por pie lineal extra.
	DefaultSizeRatePerFoot = decimal.NewFromFloat(0.10)
)

// Engine calcula precios a partir de una ProductConfiguration y las elecciones del
// cliente. sizeRate es configurable por plataforma (0.10 en el comportamiento de
// referencia).
type Engine struct {
	catalog  Catalog
	sizeRate decimal.Decimal
}

// NewEngine construye el motor con la tarifa por defecto.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog, sizeRate: DefaultSizeRatePerFoot}
}

// NewEngineWithRate construye el motor con una tarifa de tamaño explícita.
func NewEngineWithRate(catalog Catalog, sizeRate decimal.Decimal) *Engine {
	return &Engine{catalog: catalog, sizeRate: sizeRate}
}

// ComputePrice calcula el desglose de precio para una configuración, un tamaño y una
// elección de valor por categoría (kind -> valueID).
//
// Reglas:
//   - width/height fuera de [min, max] en su eje: ErrDimensionOutOfRange. El motor
//     rechaza en lugar de ajustar silenciosamente, para no enmascarar bugs de UI.
//   - Un valueID elegido que no esté seleccionado en la configuración para esa
//     categoría: ErrUnknownCategoryValue.
//   - Una categoría con selecciones pero sin entrada en chosen contribuye con su
//     selección por defecto (el fallback es una regla de primera clase, no un
//     accidente de la capa UI).
//   - Una categoría sin selecciones contribuye 0.
func (e *Engine) ComputePrice(
	cfg *entity.ProductConfiguration,
	basePrice, width, height decimal.Decimal,
	chosen map[entity.CategoryKind]string,
) (*Breakdown, error) {
	if cfg == nil {
		return nil, domain.ErrInvalidInput
	}
	if !cfg.Dimensions.Contains(width, height) {
		return nil, domain.ErrDimensionOutOfRange
	}

	bd := &Breakdown{
		BasePrice: basePrice,
		Width:     width,
		Height:    height,
	}

	// Ajuste por tamaño: pulgadas extra sobre el mínimo de cada eje, a pies.
	extraWidth := decimal.Max(decimal.Zero, width.Sub(cfg.Dimensions.MinWidth))
	extraHeight := decimal.Max(decimal.Zero, height.Sub(cfg.Dimensions.MinHeight))
	widthFeet := extraWidth.Div(twelve)
	heightFeet := extraHeight.Div(twelve)
	bd.SizeRatio = decimal.Max(decimal.Zero, widthFeet.Add(heightFeet).Mul(e.sizeRate))
	bd.SizeAdjustment = basePrice.Mul(bd.SizeRatio)

	// Ajuste por categoría, en orden estable de kinds.
	for _, kind := range entity.AllCategoryKinds() {
		valueID, explicit := chosen[kind]
		var sel *entity.SelectedOption
		if explicit {
			sel = cfg.FindSelection(kind, valueID)
			if sel == nil {
				return nil, domain.ErrUnknownCategoryValue
			}
		} else {
			sel = cfg.DefaultSelection(kind)
			if sel == nil {
				continue // categoría sin selecciones: contribuye 0
			}
		}
		value, ok := e.catalog.ValueByID(sel.ValueID)
		if !ok {
			return nil, domain.ErrUnknownCategoryValue
		}
		line := CategoryLine{
			Kind:                 kind,
			ValueID:              sel.ValueID,
			ValueName:            value.Name,
			BaseAdjustment:       value.BasePriceAdjustment,
			AdditionalAdjustment: sel.AdditionalPriceAdjustment,
		}
		line.Subtotal = line.BaseAdjustment.Add(line.AdditionalAdjustment)
		bd.Categories = append(bd.Categories, line)
	}

	total := basePrice.Add(bd.SizeAdjustment).Add(bd.CategoryTotal())
	bd.Total = total.Round(2)
	return bd, nil
}
