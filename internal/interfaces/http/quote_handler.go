package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/application/usecase"
)

// QuoteHandler maneja la cotización canónica (público).
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Quote godoc
// @Summary      Cotizar una persiana configurada
// @Description  Desglose término a término: precio base + ajuste por tamaño + ajustes por categoría.
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Producto, dimensiones y elección"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quote [post]
func (h *QuoteHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.Quote(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QuotePDF godoc
// @Summary      Cotización en PDF
// @Tags         quote
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.QuoteRequest  true  "Producto, dimensiones y elección"
// @Success      200   {file}    binary
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quote/pdf [post]
func (h *QuoteHandler) QuotePDF(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	pdfBytes, err := h.uc.QuotePDF(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cotizacion.pdf"`)
	return c.Send(pdfBytes)
}
