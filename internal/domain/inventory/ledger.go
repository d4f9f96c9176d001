// Package inventory implementa el libro de inventario derivado: una fila ordenable por
// cada valor de opción seleccionado en la configuración de un producto. No es
// autoritativo sobre el precio; comparte identificadores con las opciones y nada más.
package inventory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
)

// Catalog resuelve IDs de valores de opción contra el catálogo (interfaz del consumidor;
// la implementación real vive en la capa de aplicación).
type Catalog interface {
	ValueByID(id string) (entity.OptionCategoryValue, bool)
}

// ItemKey construye la clave de inventario para un valor de catálogo. Las variantes de
// tela se distinguen por colorCode: cada color se stockea de forma independiente.
func ItemKey(v entity.OptionCategoryValue) string {
	if v.IsFabricVariant() {
		return string(v.Kind) + "/" + v.ID + "/" + v.ColorCode
	}
	return string(v.Kind) + "/" + v.ID
}

// Generate aplana cada valor seleccionado de la configuración (las seis categorías) en
// una fila de inventario. initialStock y minStockLevel son los valores de arranque de
// cada fila; el stock luego se muta de forma independiente con Adjust.
func Generate(cfg *entity.ProductConfiguration, catalog Catalog, initialStock, minStockLevel int64) []entity.InventoryItem {
	now := time.Now()
	var items []entity.InventoryItem
	for _, kind := range entity.AllCategoryKinds() {
		for _, sel := range cfg.SelectionsFor(kind) {
			value, ok := catalog.ValueByID(sel.ValueID)
			if !ok {
				continue
			}
			name := value.Name
			if value.IsFabricVariant() {
				name = value.Name + " / " + value.ColorName
			}
			items = append(items, entity.InventoryItem{
				Key:            ItemKey(value),
				DisplayName:    name,
				Kind:           kind,
				TotalStock:     initialStock,
				AvailableStock: initialStock,
				MinStockLevel:  minStockLevel,
				LastUpdated:    now,
			})
		}
	}
	return items
}

// Ledger mantiene las filas de inventario bajo un mutex: los ajustes que llegan de
// colocaciones de orden concurrentes se serializan, de modo que AvailableStock nunca
// queda negativo.
type Ledger struct {
	mu    sync.RWMutex
	items map[string]*entity.InventoryItem
}

// NewLedger construye el libro a partir de filas existentes (ej. reload desde
// persistencia o salida de Generate).
func NewLedger(items []entity.InventoryItem) *Ledger {
	l := &Ledger{items: make(map[string]*entity.InventoryItem, len(items))}
	for i := range items {
		it := items[i]
		l.items[it.Key] = &it
	}
	return l
}

// Adjust muta AvailableStock con decremento-si-alcanza atómico. delta negativo consume
// stock; un resultado negativo falla con ErrInsufficientStock sin aplicar nada.
func (l *Ledger) Adjust(key string, delta int64) (entity.InventoryItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.items[key]
	if !ok {
		return entity.InventoryItem{}, domain.ErrUnknownInventoryKey
	}
	next := it.AvailableStock + delta
	if next < 0 {
		return entity.InventoryItem{}, domain.ErrInsufficientStock
	}
	it.AvailableStock = next
	if next > it.TotalStock {
		it.TotalStock = next
	}
	it.LastUpdated = time.Now()
	return *it, nil
}

// Get devuelve una fila por clave.
func (l *Ledger) Get(key string) (entity.InventoryItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	it, ok := l.items[key]
	if !ok {
		return entity.InventoryItem{}, domain.ErrUnknownInventoryKey
	}
	return *it, nil
}

// Items devuelve todas las filas en orden estable por clave.
func (l *Ledger) Items() []entity.InventoryItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.InventoryItem, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// LowStock devuelve las filas en o bajo su nivel mínimo.
func (l *Ledger) LowStock() []entity.InventoryItem {
	all := l.Items()
	low := all[:0]
	for _, it := range all {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low
}
