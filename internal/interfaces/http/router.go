package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/persianas-api/internal/application/usecase"
	"github.com/jhoicas/persianas-api/internal/application/wizard"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC       *usecase.CatalogUseCase
	ConfigurationUC *usecase.ConfigurationUseCase
	QuoteUC         *usecase.QuoteUseCase
	InventoryUC     *usecase.InventoryUseCase
	WizardUC        *wizard.SessionUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de opciones (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog/:kind", catalogHandler.ListValues)

	// Cotización canónica (público)
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	api.Post("/quote", quoteHandler.Quote)
	api.Post("/quote/pdf", quoteHandler.QuotePDF)

	// Asistente de configuración (público, cliente)
	sessions := api.Group("/wizard/sessions")
	wizardHandler := NewWizardHandler(deps.WizardUC)
	sessions.Post("/", wizardHandler.Open)
	sessions.Get("/:id", wizardHandler.Get)
	sessions.Delete("/:id", wizardHandler.Abandon)
	sessions.Post("/:id/next", wizardHandler.Next)
	sessions.Post("/:id/previous", wizardHandler.Previous)
	sessions.Put("/:id/room", wizardHandler.ChooseRoom)
	sessions.Put("/:id/mount", wizardHandler.ChooseMount)
	sessions.Put("/:id/color", wizardHandler.ChooseColor)
	sessions.Put("/:id/options", wizardHandler.ChooseOption)
	sessions.Put("/:id/dimensions", wizardHandler.SetDimensions)
	sessions.Get("/:id/quote", wizardHandler.Quote)
	sessions.Get("/:id/quote/pdf", wizardHandler.QuotePDF)
	sessions.Post("/:id/cart", wizardHandler.AddToCart)

	// Rutas de vendedor (requieren Bearer Token con rol admin o vendedor)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole("admin", "vendedor"))

	// Editor de configuración de producto (protegido)
	configHandler := NewConfigurationHandler(deps.ConfigurationUC)
	cfgGroup := protected.Group("/products/:id/configuration")
	cfgGroup.Post("/", configHandler.Create)
	cfgGroup.Get("/", configHandler.Get)
	cfgGroup.Post("/selections", configHandler.AddSelection)
	cfgGroup.Delete("/selections", configHandler.RemoveSelection)
	cfgGroup.Put("/selections/default", configHandler.SetDefault)
	cfgGroup.Put("/selections/adjustment", configHandler.SetAdjustment)
	cfgGroup.Put("/dimensions", configHandler.SetDimensions)
	cfgGroup.Put("/rooms", configHandler.SetRooms)

	// Inventario derivado (protegido)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Post("/products/:id/inventory/generate", inventoryHandler.Generate)
	protected.Get("/inventory", inventoryHandler.List)
	protected.Post("/inventory/adjust", inventoryHandler.Adjust)
}
