package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/application/usecase"
)

// ConfigurationHandler maneja el editor de configuración de producto (protegido,
// rutas de vendedor). Toda mutación lleva la última Revision vista por la UI; una
// revisión desfasada responde 409.
type ConfigurationHandler struct {
	uc *usecase.ConfigurationUseCase
}

// NewConfigurationHandler construye el handler.
func NewConfigurationHandler(uc *usecase.ConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear la configuración de un producto
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.CreateConfigurationRequest  true  "Rango de dimensiones inicial"
// @Success      201   {object}  dto.ConfigurationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/configuration [post]
func (h *ConfigurationHandler) Create(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateConfigurationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), productID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener la configuración de un producto
// @Tags         configuration
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ConfigurationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/configuration [get]
func (h *ConfigurationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddSelection godoc
// @Summary      Agregar un valor del catálogo a una categoría
// @Description  La primera selección de una categoría queda como default.
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SelectionRequest  true  "Selección (con revisión vista)"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/configuration/selections [post]
func (h *ConfigurationHandler) AddSelection(c *fiber.Ctx) error {
	var in dto.SelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddSelection(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveSelection godoc
// @Summary      Quitar un valor seleccionado de una categoría
// @Description  El default no puede quitarse mientras existan otras selecciones.
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SelectionRequest  true  "Selección (con revisión vista)"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/configuration/selections [delete]
func (h *ConfigurationHandler) RemoveSelection(c *fiber.Ctx) error {
	var in dto.SelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RemoveSelection(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetDefault godoc
// @Summary      Marcar una selección como default de su categoría
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SelectionRequest  true  "Selección (con revisión vista)"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/configuration/selections/default [put]
func (h *ConfigurationHandler) SetDefault(c *fiber.Ctx) error {
	var in dto.SelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetDefault(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetAdjustment godoc
// @Summary      Fijar el ajuste adicional de una selección
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustmentRequest  true  "Monto (con revisión vista)"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/configuration/selections/adjustment [put]
func (h *ConfigurationHandler) SetAdjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetAdjustment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetDimensions godoc
// @Summary      Reemplazar el rango de dimensiones
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetDimensionsRequest  true  "Rango (con revisión vista)"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/configuration/dimensions [put]
func (h *ConfigurationHandler) SetDimensions(c *fiber.Ctx) error {
	var in dto.SetDimensionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetDimensions(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetRooms godoc
// @Summary      Reemplazar las recomendaciones de ambiente
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetRoomsRequest  true  "Recomendaciones (con revisión vista)"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/configuration/rooms [put]
func (h *ConfigurationHandler) SetRooms(c *fiber.Ctx) error {
	var in dto.SetRoomsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetRooms(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
