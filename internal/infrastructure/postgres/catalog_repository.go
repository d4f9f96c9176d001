package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

const catalogColumns = `id, kind, name, description, image_ref, base_price_adjustment,
		color_code, color_name, swatch_image_ref, created_at, updated_at`

// CatalogRepo implementa CatalogRepository sobre PostgreSQL (solo lectura: el alta de
// valores de catálogo es de otro sistema). Pasar pool o tx (Querier).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogo.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListValues lista los valores de una categoría, variantes de tela incluidas.
func (r *CatalogRepo) ListValues(ctx context.Context, kind entity.CategoryKind) ([]entity.OptionCategoryValue, error) {
	query := `
		SELECT ` + catalogColumns + `
		FROM option_category_values WHERE kind = $1 ORDER BY name, color_name`
	rows, err := r.q.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list option values: %w", err)
	}
	defer rows.Close()
	return scanCatalogRows(rows)
}

// GetValueByID obtiene un valor por ID. Devuelve nil si no existe.
func (r *CatalogRepo) GetValueByID(ctx context.Context, id string) (*entity.OptionCategoryValue, error) {
	query := `
		SELECT ` + catalogColumns + `
		FROM option_category_values WHERE id = $1`
	var v entity.OptionCategoryValue
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Kind, &v.Name, &v.Description, &v.ImageRef, &v.BasePriceAdjustment,
		&v.ColorCode, &v.ColorName, &v.SwatchImageRef, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get option value: %w", err)
	}
	return &v, nil
}

// GetValuesByIDs resuelve un lote de IDs en una sola consulta. IDs desconocidos se
// omiten silenciosamente; el motor de precios reporta los faltantes al cotizar.
func (r *CatalogRepo) GetValuesByIDs(ctx context.Context, ids []string) ([]entity.OptionCategoryValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + catalogColumns + `
		FROM option_category_values WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get option values by ids: %w", err)
	}
	defer rows.Close()
	return scanCatalogRows(rows)
}

func scanCatalogRows(rows pgx.Rows) ([]entity.OptionCategoryValue, error) {
	var values []entity.OptionCategoryValue
	for rows.Next() {
		var v entity.OptionCategoryValue
		if err := rows.Scan(
			&v.ID, &v.Kind, &v.Name, &v.Description, &v.ImageRef, &v.BasePriceAdjustment,
			&v.ColorCode, &v.ColorName, &v.SwatchImageRef, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan option value: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate option values: %w", err)
	}
	return values, nil
}
