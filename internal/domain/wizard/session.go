// Package wizard implementa la máquina de estados del asistente de configuración que
// recorre el cliente: Room → Mount → Color → Dimensions → Options → Summary.
//
// La máquina es lineal (sin ramas), síncrona y puramente en memoria: la sesión es un
// value object explícito que se crea al abrir un producto configurable y se destruye
// al agregar al carrito o abandonar. Nunca se persiste del lado servidor.
package wizard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/persianas-api/internal/domain"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/pricing"
)

// Step es un paso (pantalla) del flujo lineal del asistente.
type Step string

const (
	StepRoom       Step = "ROOM"
	StepMount      Step = "MOUNT"
	StepColor      Step = "COLOR"
	StepDimensions Step = "DIMENSIONS"
	StepOptions    Step = "OPTIONS"
	StepSummary    Step = "SUMMARY"
)

// stepOrder define la secuencia estricta de pasos.
var stepOrder = []Step{StepRoom, StepMount, StepColor, StepDimensions, StepOptions, StepSummary}

func stepIndex(s Step) int {
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Dimension es una medida en pulgadas con parte entera y fracción (ej. 36 1/8").
// La parte fraccionaria no está restringida; la completitud del paso Dimensions
// solo exige Whole > 0 en ambos ejes.
type Dimension struct {
	Whole    int
	Fraction decimal.Decimal
}

// Value devuelve la medida como decimal (pulgadas).
func (d Dimension) Value() decimal.Decimal {
	return decimal.NewFromInt(int64(d.Whole)).Add(d.Fraction)
}

// Session es el estado efímero de un flujo de checkout de un cliente. Lee la
// ProductConfiguration (nunca la muta) y alimenta el motor de precios.
type Session struct {
	ID        string
	ProductID string
	BasePrice decimal.Decimal

	cfg *entity.ProductConfiguration

	current Step
	Room    string
	Width   Dimension
	Height  Dimension

	// Chosen lleva kind -> valueID. Al crear la sesión se pre-carga con los defaults
	// de la configuración: el fallback al default es una regla de primera clase, no
	// un accidente de la UI. picked marca qué categorías eligió el cliente
	// explícitamente (la completitud de Color y Options exige elección explícita).
	Chosen map[entity.CategoryKind]string
	picked map[entity.CategoryKind]bool

	Quantity  int
	Closed    bool
	CreatedAt time.Time
}

// NewSession abre una sesión para un producto configurable. Los defaults de cada
// categoría quedan pre-cargados en Chosen.
func NewSession(cfg *entity.ProductConfiguration, basePrice decimal.Decimal) (*Session, error) {
	if cfg == nil {
		return nil, domain.ErrInvalidInput
	}
	s := &Session{
		ID:        uuid.New().String(),
		ProductID: cfg.ProductID,
		BasePrice: basePrice,
		cfg:       cfg,
		current:   StepRoom,
		Chosen:    make(map[entity.CategoryKind]string),
		picked:    make(map[entity.CategoryKind]bool),
		Quantity:  1,
		CreatedAt: time.Now(),
	}
	for _, kind := range entity.AllCategoryKinds() {
		if def := cfg.DefaultSelection(kind); def != nil {
			s.Chosen[kind] = def.ValueID
		}
	}
	return s, nil
}

// Configuration devuelve la configuración de producto de la sesión (solo lectura).
func (s *Session) Configuration() *entity.ProductConfiguration { return s.cfg }

// Current devuelve el paso actual.
func (s *Session) Current() Step { return s.current }

// StepCompleted evalúa el predicado de completitud de un paso.
func (s *Session) StepCompleted(step Step) bool {
	switch step {
	case StepRoom:
		return s.Room != ""
	case StepMount:
		// El default pre-cargado cuenta: un producto con mount por defecto (ej.
		// "inside") tiene el paso completo aunque el cliente no lo toque.
		return s.Chosen[entity.KindMountType] != ""
	case StepColor:
		return s.picked[entity.KindFabric]
	case StepDimensions:
		return s.Width.Whole > 0 && s.Height.Whole > 0
	case StepOptions:
		// Completo con cualquier elección explícita fuera de mount y color.
		for _, kind := range optionStepKinds() {
			if s.picked[kind] {
				return true
			}
		}
		return false
	case StepSummary:
		return true // terminal, sin predicado propio
	}
	return false
}

func optionStepKinds() []entity.CategoryKind {
	return []entity.CategoryKind{
		entity.KindControlType, entity.KindHeadrail,
		entity.KindBottomRail, entity.KindSpecialty,
	}
}

// GoNext avanza al siguiente paso solo si el paso actual está completo.
// En Summary es no-op. Devuelve el paso resultante.
func (s *Session) GoNext() Step {
	idx := stepIndex(s.current)
	if idx < 0 || idx == len(stepOrder)-1 {
		return s.current
	}
	if !s.StepCompleted(s.current) {
		return s.current
	}
	s.current = stepOrder[idx+1]
	return s.current
}

// GoPrevious retrocede un paso. En Room es no-op. Devuelve el paso resultante.
func (s *Session) GoPrevious() Step {
	idx := stepIndex(s.current)
	if idx <= 0 {
		return s.current
	}
	s.current = stepOrder[idx-1]
	return s.current
}

// ChooseRoom registra el ambiente elegido.
func (s *Session) ChooseRoom(room string) error {
	if s.Closed {
		return domain.ErrSessionClosed
	}
	if room == "" {
		return domain.ErrInvalidInput
	}
	s.Room = room
	return nil
}

// ChooseOption registra la elección explícita de un valor para una categoría.
// El valor debe estar seleccionado en la configuración del producto.
func (s *Session) ChooseOption(kind entity.CategoryKind, valueID string) error {
	if s.Closed {
		return domain.ErrSessionClosed
	}
	if !kind.IsValid() {
		return domain.ErrInvalidInput
	}
	if s.cfg.FindSelection(kind, valueID) == nil {
		return domain.ErrUnknownCategoryValue
	}
	s.Chosen[kind] = valueID
	s.picked[kind] = true
	return nil
}

// ChooseMount es azúcar para el paso Mount.
func (s *Session) ChooseMount(valueID string) error {
	return s.ChooseOption(entity.KindMountType, valueID)
}

// ChooseColor es azúcar para el paso Color (variantes de tela).
func (s *Session) ChooseColor(valueID string) error {
	return s.ChooseOption(entity.KindFabric, valueID)
}

// SetDimensions registra el tamaño pedido. No valida contra el rango aquí: el motor
// de precios rechaza dimensiones fuera de rango al cotizar.
func (s *Session) SetDimensions(width, height Dimension) error {
	if s.Closed {
		return domain.ErrSessionClosed
	}
	if width.Whole < 0 || height.Whole < 0 ||
		width.Fraction.IsNegative() || height.Fraction.IsNegative() {
		return domain.ErrInvalidInput
	}
	s.Width = width
	s.Height = height
	return nil
}

// SetQuantity fija la cantidad a ordenar.
func (s *Session) SetQuantity(q int) error {
	if s.Closed {
		return domain.ErrSessionClosed
	}
	if q <= 0 {
		return domain.ErrInvalidQuantity
	}
	s.Quantity = q
	return nil
}

// Quote calcula el desglose de precio para el estado actual de la sesión.
func (s *Session) Quote(engine *pricing.Engine) (*pricing.Breakdown, error) {
	return engine.ComputePrice(s.cfg, s.BasePrice, s.Width.Value(), s.Height.Value(), s.Chosen)
}

// AddToCart es la acción terminal: valida la cantidad, cotiza con el motor y emite la
// línea de carrito. La sesión queda cerrada; operaciones posteriores fallan con
// ErrSessionClosed.
func (s *Session) AddToCart(engine *pricing.Engine, quantity int) (*entity.CartLineItem, error) {
	if s.Closed {
		return nil, domain.ErrSessionClosed
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	bd, err := s.Quote(engine)
	if err != nil {
		return nil, err
	}
	chosen := make(map[entity.CategoryKind]string, len(s.Chosen))
	for k, v := range s.Chosen {
		chosen[k] = v
	}
	item := &entity.CartLineItem{
		ID:            uuid.New().String(),
		ProductID:     s.ProductID,
		Width:         s.Width.Value(),
		Height:        s.Height.Value(),
		ChosenOptions: chosen,
		Quantity:      quantity,
		UnitPrice:     bd.Total,
		CreatedAt:     time.Now(),
	}
	s.Quantity = quantity
	s.Closed = true
	return item, nil
}
