package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementa InventoryRepository sobre PostgreSQL. El libro en memoria
// es la autoridad; aquí solo se vuelca su estado (upsert por clave) y se recarga al
// arrancar.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Persist vuelca las filas recibidas (upsert por item_key).
func (r *InventoryRepo) Persist(ctx context.Context, items []entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items
			(item_key, display_name, kind, total_stock, available_stock, min_stock_level, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (item_key) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			total_stock = EXCLUDED.total_stock,
			available_stock = EXCLUDED.available_stock,
			min_stock_level = EXCLUDED.min_stock_level,
			last_updated = EXCLUDED.last_updated`
	for _, item := range items {
		_, err := r.q.Exec(ctx, query,
			item.Key, item.DisplayName, string(item.Kind),
			item.TotalStock, item.AvailableStock, item.MinStockLevel, item.LastUpdated,
		)
		if err != nil {
			return fmt.Errorf("upsert inventory item %s: %w", item.Key, err)
		}
	}
	return nil
}

// Reload carga todas las filas persistidas para reconstruir el libro al arrancar.
func (r *InventoryRepo) Reload(ctx context.Context) ([]entity.InventoryItem, error) {
	query := `
		SELECT item_key, display_name, kind, total_stock, available_stock, min_stock_level, last_updated
		FROM inventory_items ORDER BY item_key`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reload inventory: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(
			&item.Key, &item.DisplayName, &item.Kind,
			&item.TotalStock, &item.AvailableStock, &item.MinStockLevel, &item.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory items: %w", err)
	}
	return items, nil
}
