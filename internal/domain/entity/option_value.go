package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryKind identifica uno de los seis ejes de opciones configurables de una persiana.
type CategoryKind string

const (
	KindMountType  CategoryKind = "MOUNT_TYPE"
	KindControlType CategoryKind = "CONTROL_TYPE"
	KindFabric     CategoryKind = "FABRIC"
	KindHeadrail   CategoryKind = "HEADRAIL"
	KindBottomRail CategoryKind = "BOTTOM_RAIL"
	KindSpecialty  CategoryKind = "SPECIALTY"
)

// AllCategoryKinds devuelve los seis kinds en orden estable (para iteración determinista).
func AllCategoryKinds() []CategoryKind {
	return []CategoryKind{
		KindMountType, KindControlType, KindFabric,
		KindHeadrail, KindBottomRail, KindSpecialty,
	}
}

// IsValid indica si el kind es uno de los seis conocidos.
func (k CategoryKind) IsValid() bool {
	switch k {
	case KindMountType, KindControlType, KindFabric, KindHeadrail, KindBottomRail, KindSpecialty:
		return true
	}
	return false
}

// OptionCategoryValue es una entrada inmutable del catálogo de opciones.
// Las configuraciones de producto la referencian por ID, nunca la copian.
// BasePriceAdjustment es el delta de precio a nivel catálogo, independiente del producto.
type OptionCategoryValue struct {
	ID                  string
	Kind                CategoryKind
	Name                string
	Description         string
	ImageRef            string
	BasePriceAdjustment decimal.Decimal

	// Solo para Kind == KindFabric: una misma tela puede tener varias variantes
	// de color, cada una seleccionable y con stock independiente.
	ColorCode       string
	ColorName       string
	SwatchImageRef  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFabricVariant indica si el valor es una variante de color de tela.
func (v OptionCategoryValue) IsFabricVariant() bool {
	return v.Kind == KindFabric && v.ColorCode != ""
}
