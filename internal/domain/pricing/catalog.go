package pricing

import "github.com/jhoicas/persianas-api/internal/domain/entity"

// StaticCatalog es una implementación de Catalog sobre un snapshot en memoria
// (típicamente el resultado de resolver en lote los IDs seleccionados).
type StaticCatalog map[string]entity.OptionCategoryValue

// NewStaticCatalog indexa valores por ID.
func NewStaticCatalog(values []entity.OptionCategoryValue) StaticCatalog {
	m := make(StaticCatalog, len(values))
	for _, v := range values {
		m[v.ID] = v
	}
	return m
}

// ValueByID implementa Catalog.
func (c StaticCatalog) ValueByID(id string) (entity.OptionCategoryValue, bool) {
	v, ok := c[id]
	return v, ok
}
