package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/application/wizard"
)

// WizardHandler maneja el asistente de configuración del cliente (público). El flujo
// es lineal: Room → Mount → Color → Dimensions → Options → Summary.
type WizardHandler struct {
	uc *wizard.SessionUseCase
}

// NewWizardHandler construye el handler.
func NewWizardHandler(uc *wizard.SessionUseCase) *WizardHandler {
	return &WizardHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir una sesión del asistente
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  true  "Producto a configurar"
// @Success      201   {object}  dto.SessionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions [post]
func (h *WizardHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Open(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         wizard
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions/{id} [get]
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Next godoc
// @Summary      Avanzar al siguiente paso
// @Description  Solo avanza si el paso actual está completo; si no, la respuesta queda en el mismo paso.
// @Tags         wizard
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/wizard/sessions/{id}/next [post]
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	out, err := h.uc.Next(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Previous godoc
// @Summary      Retroceder un paso
// @Tags         wizard
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/wizard/sessions/{id}/previous [post]
func (h *WizardHandler) Previous(c *fiber.Ctx) error {
	out, err := h.uc.Previous(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChooseRoom godoc
// @Summary      Elegir ambiente (paso Room)
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.ChooseRoomRequest  true  "Ambiente"
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/wizard/sessions/{id}/room [put]
func (h *WizardHandler) ChooseRoom(c *fiber.Ctx) error {
	var in dto.ChooseRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChooseRoom(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChooseMount godoc
// @Summary      Elegir tipo de montaje (paso Mount)
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.ChooseValueRequest  true  "Valor de montaje"
// @Success      200   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions/{id}/mount [put]
func (h *WizardHandler) ChooseMount(c *fiber.Ctx) error {
	var in dto.ChooseValueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChooseMount(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChooseColor godoc
// @Summary      Elegir color de tela (paso Color)
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.ChooseValueRequest  true  "Variante de tela"
// @Success      200   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions/{id}/color [put]
func (h *WizardHandler) ChooseColor(c *fiber.Ctx) error {
	var in dto.ChooseValueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChooseColor(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChooseOption godoc
// @Summary      Elegir un valor para una categoría (Mount, Color u Options)
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.ChooseOptionRequest  true  "Categoría y valor"
// @Success      200   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions/{id}/options [put]
func (h *WizardHandler) ChooseOption(c *fiber.Ctx) error {
	var in dto.ChooseOptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChooseOption(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetDimensions godoc
// @Summary      Fijar dimensiones (paso Dimensions)
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.SetSessionDimensionsRequest  true  "Ancho y alto en pulgadas"
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/wizard/sessions/{id}/dimensions [put]
func (h *WizardHandler) SetDimensions(c *fiber.Ctx) error {
	var in dto.SetSessionDimensionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetDimensions(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Quote godoc
// @Summary      Cotizar el estado actual de la sesión
// @Tags         wizard
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions/{id}/quote [get]
func (h *WizardHandler) Quote(c *fiber.Ctx) error {
	out, err := h.uc.Quote(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QuotePDF godoc
// @Summary      Cotización de la sesión en PDF
// @Tags         wizard
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {file}    binary
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions/{id}/quote/pdf [get]
func (h *WizardHandler) QuotePDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.QuotePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cotizacion.pdf"`)
	return c.Send(pdfBytes)
}

// AddToCart godoc
// @Summary      Agregar al carrito (acción terminal)
// @Description  Cotiza, emite la línea al carrito externo y cierra la sesión.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.AddToCartRequest  true  "Cantidad"
// @Success      201   {object}  dto.CartLineItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions/{id}/cart [post]
func (h *WizardHandler) AddToCart(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddToCart(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Abandon godoc
// @Summary      Abandonar la sesión
// @Tags         wizard
// @Param        id  path  string  true  "ID de sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wizard/sessions/{id} [delete]
func (h *WizardHandler) Abandon(c *fiber.Ctx) error {
	if err := h.uc.Abandon(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
