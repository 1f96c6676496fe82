package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	CategoryUC  *usecase.CategoryUseCase
	ActivityUC  *usecase.ActivityUseCase
	SettingsUC  *usecase.SettingsUseCase
	ScanUC      *usecase.ScanUseCase
	AssistantUC *usecase.AssistantUseCase
	ReportUC    *usecase.ReportUseCase
	AuthUC      *auth.AuthUseCase
	Store       *store.Store
	JWTSecret   string
}

// Router registra las rutas de la API. Reparto por rol: guest solo lee,
// team opera el inventario (items, escaneo, asistente), admin además
// administra preferencias, importación y limpieza del historial.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público, el resto requiere sesión)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Store))
	writer := RequireRole(entity.RoleTeam, entity.RoleAdmin)
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Post("/auth/refresh", authHandler.Refresh)
	protected.Get("/auth/session", authHandler.Session)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", writer, itemHandler.Create)
	items.Post("/import", adminOnly, itemHandler.Import)
	items.Put("/:id", writer, itemHandler.Update)
	items.Delete("/:id", writer, itemHandler.Delete)

	// Categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", writer, categoryHandler.Create)
	categories.Put("/:id", writer, categoryHandler.Update)
	categories.Delete("/:id", writer, categoryHandler.Delete)

	// Historial
	activity := protected.Group("/activity")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activity.Get("/", activityHandler.List)
	activity.Delete("/", adminOnly, activityHandler.Clear)

	// Preferencias
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", adminOnly, settingsHandler.Update)

	// Escaneo
	scanHandler := NewScanHandler(deps.ScanUC)
	protected.Post("/scan", writer, scanHandler.Scan)

	// Asistente
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	protected.Post("/assistant/chat", assistantHandler.Chat)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory", reportHandler.Inventory)
}
