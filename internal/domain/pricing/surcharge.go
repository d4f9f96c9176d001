package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

// SurchargeTable mapea el nombre "grueso" que muestra el wizard (ej. "Motorized",
// "Blackout") al valueID canónico del catálogo, por categoría. Permite que la UI del
// wizard hable en strings mientras el cálculo pasa siempre por ComputePrice: hay un
// único camino de precio.
type SurchargeTable map[entity.CategoryKind]map[string]string

// NewSurchargeTable construye la tabla a partir de las selecciones de la configuración
// y el catálogo: cada valor seleccionado queda direccionable por su Name (y por
// ColorName en telas).
func NewSurchargeTable(cfg *entity.ProductConfiguration, catalog Catalog) SurchargeTable {
	table := make(SurchargeTable)
	for _, kind := range entity.AllCategoryKinds() {
		for _, sel := range cfg.SelectionsFor(kind) {
			value, ok := catalog.ValueByID(sel.ValueID)
			if !ok {
				continue
			}
			if table[kind] == nil {
				table[kind] = make(map[string]string)
			}
			table[kind][value.Name] = value.ID
			if value.IsFabricVariant() {
				table[kind][value.ColorName] = value.ID
			}
		}
	}
	return table
}

// Resolve traduce elecciones por nombre (kind -> nombre mostrado) al mapa canónico
// kind -> valueID. Un nombre sin entrada en la tabla es ErrUnknownCategoryValue.
func (t SurchargeTable) Resolve(names map[entity.CategoryKind]string) (map[entity.CategoryKind]string, error) {
	chosen := make(map[entity.CategoryKind]string, len(names))
	for kind, name := range names {
		id, ok := t[kind][name]
		if !ok {
			return nil, domain.ErrUnknownCategoryValue
		}
		chosen[kind] = id
	}
	return chosen, nil
}

// EstimatePrice es la variante usada por el wizard cuando la taxonomía es gruesa
// (la elección llega como string por categoría). Normaliza vía la tabla y delega en
// ComputePrice, de modo que ambos caminos coinciden por construcción.
func (e *Engine) EstimatePrice(
	cfg *entity.ProductConfiguration,
	basePrice, width, height decimal.Decimal,
	names map[entity.CategoryKind]string,
	table SurchargeTable,
) (*Breakdown, error) {
	chosen, err := table.Resolve(names)
	if err != nil {
		return nil, err
	}
	return e.ComputePrice(cfg, basePrice, width, height, chosen)
}
