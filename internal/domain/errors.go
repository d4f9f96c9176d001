package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto de revisión: la configuración fue modificada por otra sesión")

	// Editor de configuración de producto
	ErrDuplicateSelection    = errors.New("el valor ya está seleccionado en esta categoría")
	ErrCannotRemoveDefault   = errors.New("no se puede eliminar la selección por defecto mientras existan otras selecciones")
	ErrSelectionNotFound     = errors.New("el valor no está seleccionado en esta categoría")
	ErrInvalidAmount         = errors.New("monto de ajuste inválido")
	ErrInvalidDimensionRange = errors.New("rango de dimensiones inválido")

	// Motor de precios
	ErrUnknownCategoryValue = errors.New("valor de categoría desconocido para esta configuración")
	ErrDimensionOutOfRange  = errors.New("dimensión fuera del rango permitido")

	// Asistente de configuración (wizard)
	ErrInvalidQuantity = errors.New("cantidad inválida: debe ser mayor que cero")
	ErrSessionClosed   = errors.New("la sesión del asistente ya fue cerrada")

	// Inventario
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrUnknownInventoryKey = errors.New("clave de inventario desconocida")
)
