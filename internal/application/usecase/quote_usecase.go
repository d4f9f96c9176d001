package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/pricing"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
	"github.com/jhoicas/persianas-api/pkg/moneyfmt"
)

// QuotePDFGenerator puerto para la representación PDF de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, product *repository.ProductInfo, bd *pricing.Breakdown) ([]byte, error)
}

// QuoteUseCase cotiza una persiana configurada con el motor de precios canónico.
// Arma el snapshot de catálogo resolviendo en lote los valores seleccionados, de modo
// que el motor permanece puro (sin I/O).
type QuoteUseCase struct {
	configRepo  repository.ConfigurationRepository
	catalogRepo repository.CatalogRepository
	sizeRate    decimal.Decimal
	pdfGen      QuotePDFGenerator
}

// NewQuoteUseCase construye el caso de uso. pdfGen puede ser nil (sin endpoint PDF).
func NewQuoteUseCase(
	configRepo repository.ConfigurationRepository,
	catalogRepo repository.CatalogRepository,
	sizeRate decimal.Decimal,
	pdfGen QuotePDFGenerator,
) *QuoteUseCase {
	return &QuoteUseCase{
		configRepo:  configRepo,
		catalogRepo: catalogRepo,
		sizeRate:    sizeRate,
		pdfGen:      pdfGen,
	}
}

// Quote calcula el desglose de precio para la elección recibida. Chosen (valueIDs)
// tiene prioridad; si solo vienen Names, se normalizan vía la tabla de recargos.
func (uc *QuoteUseCase) Quote(ctx context.Context, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	cfg, product, catalog, err := uc.loadPricingInputs(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	engine := pricing.NewEngineWithRate(catalog, uc.sizeRate)

	var bd *pricing.Breakdown
	if len(in.Chosen) > 0 || len(in.Names) == 0 {
		bd, err = engine.ComputePrice(cfg, product.BasePrice, in.Width, in.Height, toChosenMap(in.Chosen))
	} else {
		table := pricing.NewSurchargeTable(cfg, catalog)
		bd, err = engine.EstimatePrice(cfg, product.BasePrice, in.Width, in.Height, toChosenMap(in.Names), table)
	}
	if err != nil {
		return nil, err
	}
	return ToQuoteResponse(in.ProductID, bd), nil
}

// QuotePDF genera la cotización en PDF para la misma entrada que Quote.
func (uc *QuoteUseCase) QuotePDF(ctx context.Context, in dto.QuoteRequest) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	cfg, product, catalog, err := uc.loadPricingInputs(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	engine := pricing.NewEngineWithRate(catalog, uc.sizeRate)
	bd, err := engine.ComputePrice(cfg, product.BasePrice, in.Width, in.Height, toChosenMap(in.Chosen))
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateQuotePDF(ctx, product, bd)
}

// loadPricingInputs carga configuración, producto y el snapshot de catálogo con todos
// los valores seleccionados resueltos.
func (uc *QuoteUseCase) loadPricingInputs(ctx context.Context, productID string) (
	*entity.ProductConfiguration, *repository.ProductInfo, pricing.StaticCatalog, error,
) {
	cfg, err := uc.configRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	product, err := uc.configRepo.GetProductInfo(ctx, productID)
	if err != nil {
		return nil, nil, nil, err
	}
	if product == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	catalog, err := SnapshotCatalog(ctx, uc.catalogRepo, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, product, catalog, nil
}

// SnapshotCatalog resuelve en lote todos los valueIDs seleccionados de una
// configuración contra el catálogo. Compartido con el wizard y el inventario.
func SnapshotCatalog(ctx context.Context, repo repository.CatalogRepository, cfg *entity.ProductConfiguration) (pricing.StaticCatalog, error) {
	var ids []string
	for _, kind := range entity.AllCategoryKinds() {
		for _, sel := range cfg.SelectionsFor(kind) {
			ids = append(ids, sel.ValueID)
		}
	}
	values, err := repo.GetValuesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return pricing.NewStaticCatalog(values), nil
}

// ── mapeos ────────────────────────────────────────────────────────────────────

func toChosenMap(in map[string]string) map[entity.CategoryKind]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[entity.CategoryKind]string, len(in))
	for k, v := range in {
		out[entity.CategoryKind(k)] = v
	}
	return out
}

// ToQuoteResponse arma la respuesta de cotización a partir del desglose del motor.
// Compartido con el asistente.
func ToQuoteResponse(productID string, bd *pricing.Breakdown) *dto.QuoteResponse {
	cats := make([]dto.CategoryLineResponse, 0, len(bd.Categories))
	for _, c := range bd.Categories {
		cats = append(cats, dto.CategoryLineResponse{
			Kind:                 string(c.Kind),
			ValueID:              c.ValueID,
			ValueName:            c.ValueName,
			BaseAdjustment:       c.BaseAdjustment,
			AdditionalAdjustment: c.AdditionalAdjustment,
			Subtotal:             c.Subtotal,
		})
	}
	return &dto.QuoteResponse{
		ProductID:      productID,
		BasePrice:      bd.BasePrice,
		Width:          bd.Width,
		Height:         bd.Height,
		SizeRatio:      bd.SizeRatio,
		SizeAdjustment: bd.SizeAdjustment,
		Categories:     cats,
		Total:          bd.Total,
		TotalDisplay:   moneyfmt.Pesos(bd.Total),
	}
}
