// Package wizard orquesta las sesiones del asistente de configuración: las abre
// cargando la configuración de producto publicada, las guarda en un registro en
// memoria (nunca se persisten) y traduce cada acción del cliente al dominio.
package wizard

import (
	"context"
	"sync"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/application/usecase"
	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/pricing"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
	domainwizard "github.com/jhoicas/persianas-api/internal/domain/wizard"
	"github.com/shopspring/decimal"
)

// session ata el estado del asistente con el motor de precios congelado al abrir:
// si el vendedor publica una nueva revisión, las sesiones abiertas siguen cotizando
// contra el catálogo que vieron.
type session struct {
	state  *domainwizard.Session
	info   *repository.ProductInfo
	engine *pricing.Engine
}

// SessionUseCase administra el ciclo de vida de las sesiones del asistente.
type SessionUseCase struct {
	configRepo  repository.ConfigurationRepository
	catalogRepo repository.CatalogRepository
	cart        CartSink
	pdfGen      usecase.QuotePDFGenerator
	sizeRate    decimal.Decimal

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionUseCase construye el caso de uso del asistente. pdfGen puede ser nil
// (sin endpoint PDF).
func NewSessionUseCase(
	configRepo repository.ConfigurationRepository,
	catalogRepo repository.CatalogRepository,
	cart CartSink,
	pdfGen usecase.QuotePDFGenerator,
	sizeRate decimal.Decimal,
) *SessionUseCase {
	return &SessionUseCase{
		configRepo:  configRepo,
		catalogRepo: catalogRepo,
		cart:        cart,
		pdfGen:      pdfGen,
		sizeRate:    sizeRate,
		sessions:    make(map[string]*session),
	}
}

// Open abre una sesión para un producto configurable: carga configuración y precio
// base, toma un snapshot del catálogo y arranca en el paso Room con los defaults
// pre-cargados.
func (uc *SessionUseCase) Open(ctx context.Context, req dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	if req.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	cfg, err := uc.configRepo.GetByProductID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	info, err := uc.configRepo.GetProductInfo(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	catalog, err := usecase.SnapshotCatalog(ctx, uc.catalogRepo, cfg)
	if err != nil {
		return nil, err
	}
	state, err := domainwizard.NewSession(cfg, info.BasePrice)
	if err != nil {
		return nil, err
	}
	s := &session{state: state, info: info, engine: pricing.NewEngineWithRate(catalog, uc.sizeRate)}

	uc.mu.Lock()
	uc.sessions[state.ID] = s
	uc.mu.Unlock()

	return toSessionResponse(state), nil
}

// Get devuelve el estado visible de una sesión.
func (uc *SessionUseCase) Get(_ context.Context, sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(s.state), nil
}

// Next avanza al siguiente paso si el actual está completo; si no, la sesión
// permanece en el mismo paso (la respuesta lo refleja, no es error).
func (uc *SessionUseCase) Next(_ context.Context, sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	s.state.GoNext()
	return toSessionResponse(s.state), nil
}

// Previous retrocede un paso (no-op en Room).
func (uc *SessionUseCase) Previous(_ context.Context, sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	s.state.GoPrevious()
	return toSessionResponse(s.state), nil
}

// ChooseRoom registra el ambiente elegido en el paso Room.
func (uc *SessionUseCase) ChooseRoom(_ context.Context, sessionID string, req dto.ChooseRoomRequest) (*dto.SessionResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.state.ChooseRoom(req.Room); err != nil {
		return nil, err
	}
	return toSessionResponse(s.state), nil
}

// ChooseOption registra una elección explícita (Mount, Color u Options).
func (uc *SessionUseCase) ChooseOption(_ context.Context, sessionID string, req dto.ChooseOptionRequest) (*dto.SessionResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	kind := entity.CategoryKind(req.Kind)
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if err := s.state.ChooseOption(kind, req.ValueID); err != nil {
		return nil, err
	}
	return toSessionResponse(s.state), nil
}

// ChooseMount registra el tipo de montaje (paso Mount).
func (uc *SessionUseCase) ChooseMount(_ context.Context, sessionID string, req dto.ChooseValueRequest) (*dto.SessionResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.state.ChooseMount(req.ValueID); err != nil {
		return nil, err
	}
	return toSessionResponse(s.state), nil
}

// ChooseColor registra la variante de tela elegida (paso Color).
func (uc *SessionUseCase) ChooseColor(_ context.Context, sessionID string, req dto.ChooseValueRequest) (*dto.SessionResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.state.ChooseColor(req.ValueID); err != nil {
		return nil, err
	}
	return toSessionResponse(s.state), nil
}

// SetDimensions registra el tamaño pedido en el paso Dimensions.
func (uc *SessionUseCase) SetDimensions(_ context.Context, sessionID string, req dto.SetSessionDimensionsRequest) (*dto.SessionResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	width := domainwizard.Dimension{Whole: req.Width.Whole, Fraction: req.Width.Fraction}
	height := domainwizard.Dimension{Whole: req.Height.Whole, Fraction: req.Height.Fraction}
	if err := s.state.SetDimensions(width, height); err != nil {
		return nil, err
	}
	return toSessionResponse(s.state), nil
}

// Quote cotiza el estado actual de la sesión con el motor congelado al abrirla.
func (uc *SessionUseCase) Quote(_ context.Context, sessionID string) (*dto.QuoteResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	bd, err := s.state.Quote(s.engine)
	if err != nil {
		return nil, err
	}
	return usecase.ToQuoteResponse(s.state.ProductID, bd), nil
}

// QuotePDF genera la cotización del estado actual de la sesión en PDF.
func (uc *SessionUseCase) QuotePDF(ctx context.Context, sessionID string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	bd, err := s.state.Quote(s.engine)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateQuotePDF(ctx, s.info, bd)
}

// AddToCart es la acción terminal: cotiza, emite la línea al carrito externo y
// descarta la sesión del registro. Si el carrito rechaza la línea la sesión ya
// quedó cerrada en el dominio y se descarta igual (el cliente reabre el flujo).
func (uc *SessionUseCase) AddToCart(ctx context.Context, sessionID string, req dto.AddToCartRequest) (*dto.CartLineItemResponse, error) {
	s, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	item, err := s.state.AddToCart(s.engine, req.Quantity)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()

	if err := uc.cart.AddLineItem(ctx, item); err != nil {
		return nil, err
	}
	return toCartLineItemResponse(item), nil
}

// Abandon descarta una sesión sin emitir nada al carrito.
func (uc *SessionUseCase) Abandon(_ context.Context, sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[sessionID]; !ok {
		return domain.ErrNotFound
	}
	delete(uc.sessions, sessionID)
	return nil
}

func (uc *SessionUseCase) lookup(sessionID string) (*session, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	s, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func toSessionResponse(s *domainwizard.Session) *dto.SessionResponse {
	completed := make(map[string]bool)
	for _, step := range []domainwizard.Step{
		domainwizard.StepRoom, domainwizard.StepMount, domainwizard.StepColor,
		domainwizard.StepDimensions, domainwizard.StepOptions, domainwizard.StepSummary,
	} {
		completed[string(step)] = s.StepCompleted(step)
	}
	chosen := make(map[string]string, len(s.Chosen))
	for kind, valueID := range s.Chosen {
		chosen[string(kind)] = valueID
	}
	return &dto.SessionResponse{
		SessionID:     s.ID,
		ProductID:     s.ProductID,
		CurrentStep:   string(s.Current()),
		StepCompleted: completed,
		Room:          s.Room,
		Width:         dto.DimensionDTO{Whole: s.Width.Whole, Fraction: s.Width.Fraction},
		Height:        dto.DimensionDTO{Whole: s.Height.Whole, Fraction: s.Height.Fraction},
		Chosen:        chosen,
		Quantity:      s.Quantity,
		Closed:        s.Closed,
	}
}

func toCartLineItemResponse(item *entity.CartLineItem) *dto.CartLineItemResponse {
	chosen := make(map[string]string, len(item.ChosenOptions))
	for kind, valueID := range item.ChosenOptions {
		chosen[string(kind)] = valueID
	}
	return &dto.CartLineItemResponse{
		ID:            item.ID,
		ProductID:     item.ProductID,
		Width:         item.Width,
		Height:        item.Height,
		ChosenOptions: chosen,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		CreatedAt:     item.CreatedAt,
	}
}
