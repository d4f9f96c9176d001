package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/persianas-api/internal/domain"
)

// DimensionRange es el dominio continuo de tamaños en que puede ordenarse un producto
// (pulgadas). Invariantes: min < max en ambos ejes, incrementos > 0.
type DimensionRange struct {
	MinWidth        decimal.Decimal
	MaxWidth        decimal.Decimal
	MinHeight       decimal.Decimal
	MaxHeight       decimal.Decimal
	WidthIncrement  decimal.Decimal
	HeightIncrement decimal.Decimal
}

// Validate verifica los invariantes del rango.
func (r DimensionRange) Validate() error {
	if r.MinWidth.GreaterThanOrEqual(r.MaxWidth) || r.MinHeight.GreaterThanOrEqual(r.MaxHeight) {
		return domain.ErrInvalidDimensionRange
	}
	if r.WidthIncrement.LessThanOrEqual(decimal.Zero) || r.HeightIncrement.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidDimensionRange
	}
	if r.MinWidth.LessThanOrEqual(decimal.Zero) || r.MinHeight.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidDimensionRange
	}
	return nil
}

// Contains indica si (width, height) cae dentro de [min, max] en ambos ejes.
func (r DimensionRange) Contains(width, height decimal.Decimal) bool {
	return width.GreaterThanOrEqual(r.MinWidth) && width.LessThanOrEqual(r.MaxWidth) &&
		height.GreaterThanOrEqual(r.MinHeight) && height.LessThanOrEqual(r.MaxHeight)
}

// SelectedOption es la selección por producto de un valor del catálogo, con el
// ajuste adicional del vendedor encima del ajuste base del valor.
// Invariante (por categoría): si hay ≥1 selección, exactamente una tiene IsDefault.
type SelectedOption struct {
	ValueID                   string
	IsDefault                 bool
	AdditionalPriceAdjustment decimal.Decimal
}

// RoomRecommendation es una sugerencia de ambiente para merchandising (1..5).
// No participa en el cálculo de precio.
type RoomRecommendation struct {
	RoomKind string
	Level    int
	Note     string
}

// Validate verifica el nivel de recomendación.
func (r RoomRecommendation) Validate() error {
	if r.RoomKind == "" || r.Level < 1 || r.Level > 5 {
		return domain.ErrInvalidInput
	}
	return nil
}

// ProductConfiguration es la curaduría del vendedor para un producto configurable:
// un subconjunto de valores por categoría (con defaults y ajustes adicionales) y el
// rango continuo de dimensiones. El motor de precios y el wizard la leen, nunca la mutan.
//
// Revision es un sello de versión optimista: cada mutación exitosa lo incrementa y la
// persistencia lo compara al escribir (compare-and-swap) para detectar ediciones
// concurrentes de dos sesiones de vendedor.
type ProductConfiguration struct {
	ProductID  string
	Revision   int64
	Dimensions DimensionRange
	Selections map[CategoryKind][]SelectedOption
	Rooms      []RoomRecommendation
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewProductConfiguration construye una configuración vacía para un producto.
func NewProductConfiguration(productID string, dims DimensionRange) (*ProductConfiguration, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	return &ProductConfiguration{
		ProductID:  productID,
		Revision:   1,
		Dimensions: dims,
		Selections: make(map[CategoryKind][]SelectedOption),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (c *ProductConfiguration) touch() {
	c.Revision++
	c.UpdatedAt = time.Now()
}

// SelectionsFor devuelve las selecciones de una categoría (puede ser vacío).
func (c *ProductConfiguration) SelectionsFor(kind CategoryKind) []SelectedOption {
	return c.Selections[kind]
}

// FindSelection busca una selección por categoría y valor.
func (c *ProductConfiguration) FindSelection(kind CategoryKind, valueID string) *SelectedOption {
	for i := range c.Selections[kind] {
		if c.Selections[kind][i].ValueID == valueID {
			return &c.Selections[kind][i]
		}
	}
	return nil
}

// DefaultSelection devuelve la selección por defecto de una categoría, o nil si la
// categoría no tiene selecciones.
func (c *ProductConfiguration) DefaultSelection(kind CategoryKind) *SelectedOption {
	for i := range c.Selections[kind] {
		if c.Selections[kind][i].IsDefault {
			return &c.Selections[kind][i]
		}
	}
	return nil
}

// AddSelection agrega un valor del catálogo a la categoría con ajuste adicional 0.
// La primera selección de la categoría queda como default.
func (c *ProductConfiguration) AddSelection(kind CategoryKind, valueID string) error {
	if !kind.IsValid() || valueID == "" {
		return domain.ErrInvalidInput
	}
	if c.FindSelection(kind, valueID) != nil {
		return domain.ErrDuplicateSelection
	}
	sel := SelectedOption{
		ValueID:                   valueID,
		IsDefault:                 len(c.Selections[kind]) == 0,
		AdditionalPriceAdjustment: decimal.Zero,
	}
	c.Selections[kind] = append(c.Selections[kind], sel)
	c.touch()
	return nil
}

// RemoveSelection elimina un valor de la categoría. Si el valor es el default actual
// y quedan otras selecciones, falla: el vendedor debe redesignar el default primero.
// Si era la última selección, la categoría queda vacía sin restricción de default.
func (c *ProductConfiguration) RemoveSelection(kind CategoryKind, valueID string) error {
	sels := c.Selections[kind]
	idx := -1
	for i := range sels {
		if sels[i].ValueID == valueID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrSelectionNotFound
	}
	if sels[idx].IsDefault && len(sels) > 1 {
		return domain.ErrCannotRemoveDefault
	}
	c.Selections[kind] = append(sels[:idx], sels[idx+1:]...)
	if len(c.Selections[kind]) == 0 {
		delete(c.Selections, kind)
	}
	c.touch()
	return nil
}

// SetDefault marca el valor como default de su categoría y limpia el flag en el resto.
func (c *ProductConfiguration) SetDefault(kind CategoryKind, valueID string) error {
	target := c.FindSelection(kind, valueID)
	if target == nil {
		return domain.ErrSelectionNotFound
	}
	for i := range c.Selections[kind] {
		c.Selections[kind][i].IsDefault = false
	}
	target.IsDefault = true
	c.touch()
	return nil
}

// SetAdditionalPriceAdjustment fija el ajuste adicional del producto para un valor
// seleccionado. floor es el piso configurado por la plataforma (0 por defecto);
// montos por debajo del piso se rechazan.
func (c *ProductConfiguration) SetAdditionalPriceAdjustment(kind CategoryKind, valueID string, amount, floor decimal.Decimal) error {
	if amount.LessThan(floor) {
		return domain.ErrInvalidAmount
	}
	target := c.FindSelection(kind, valueID)
	if target == nil {
		return domain.ErrSelectionNotFound
	}
	target.AdditionalPriceAdjustment = amount
	c.touch()
	return nil
}

// SetDimensionRange reemplaza el rango de dimensiones del producto.
func (c *ProductConfiguration) SetDimensionRange(r DimensionRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	c.Dimensions = r
	c.touch()
	return nil
}

// SetRoomRecommendations reemplaza las recomendaciones de ambiente.
func (c *ProductConfiguration) SetRoomRecommendations(rooms []RoomRecommendation) error {
	for _, r := range rooms {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	c.Rooms = rooms
	c.touch()
	return nil
}

// CheckDefaultInvariant verifica que cada categoría con selecciones tenga exactamente
// un default. Útil en tests y al cargar configuraciones persistidas.
func (c *ProductConfiguration) CheckDefaultInvariant() error {
	for _, sels := range c.Selections {
		if len(sels) == 0 {
			continue
		}
		defaults := 0
		for _, s := range sels {
			if s.IsDefault {
				defaults++
			}
		}
		if defaults != 1 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
