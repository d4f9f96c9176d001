package usecase

import (
	"context"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
)

// CatalogUseCase lectura del Option Category Store. El catálogo es propiedad de un
// sistema externo; aquí solo se consulta.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListValues lista los valores disponibles de una categoría.
func (uc *CatalogUseCase) ListValues(ctx context.Context, kind string) (*dto.OptionValueListResponse, error) {
	k := entity.CategoryKind(kind)
	if !k.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	values, err := uc.repo.ListValues(ctx, k)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OptionValueResponse, 0, len(values))
	for _, v := range values {
		items = append(items, toOptionValueResponse(v))
	}
	return &dto.OptionValueListResponse{Kind: string(k), Items: items}, nil
}

func toOptionValueResponse(v entity.OptionCategoryValue) dto.OptionValueResponse {
	return dto.OptionValueResponse{
		ID:                  v.ID,
		Kind:                string(v.Kind),
		Name:                v.Name,
		Description:         v.Description,
		ImageRef:            v.ImageRef,
		BasePriceAdjustment: v.BasePriceAdjustment,
		ColorCode:           v.ColorCode,
		ColorName:           v.ColorName,
		SwatchImageRef:      v.SwatchImageRef,
	}
}
