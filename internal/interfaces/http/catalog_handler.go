package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/persianas-api/internal/application/dto"
	"github.com/jhoicas/persianas-api/internal/application/usecase"
)

// CatalogHandler maneja las peticiones HTTP del catálogo de opciones (público).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListValues godoc
// @Summary      Listar valores de una categoría de opciones
// @Tags         catalog
// @Produce      json
// @Param        kind  path  string  true  "Categoría (MOUNT_TYPE, CONTROL_TYPE, FABRIC, HEADRAIL, BOTTOM_RAIL, SPECIALTY)"
// @Success      200   {object}  dto.OptionValueListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/{kind} [get]
func (h *CatalogHandler) ListValues(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_KIND", Message: "kind es requerido"})
	}
	out, err := h.uc.ListValues(c.UserContext(), kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
