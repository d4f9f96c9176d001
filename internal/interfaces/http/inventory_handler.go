package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/application/usecase"
)

// InventoryHandler maneja el inventario derivado (protegido, rutas de vendedor).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar filas de inventario desde la configuración de un producto
// @Description  Una fila por valor seleccionado; las telas generan una fila por variante de color. Filas existentes conservan su stock.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.GenerateInventoryRequest  true  "Stock inicial y mínimo"
// @Success      200   {object}  dto.InventoryListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/inventory/generate [post]
func (h *InventoryHandler) Generate(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.GenerateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.GenerateForProduct(c.UserContext(), productID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar stock disponible (delta con signo)
// @Description  El stock disponible nunca queda negativo; un consumo mayor al disponible responde 409.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustInventoryRequest  true  "Clave y delta"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "key es requerido"})
	}
	out, err := h.uc.Adjust(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el inventario derivado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        low_stock  query  bool  false  "Solo filas en o bajo el mínimo"
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("low_stock") {
		return c.JSON(h.uc.LowStock(c.UserContext()))
	}
	return c.JSON(h.uc.List(c.UserContext()))
}
