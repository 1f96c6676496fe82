package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	infraai "github.com/jhoicas/inventario-local/internal/infrastructure/ai"
	"github.com/jhoicas/inventario-local/internal/infrastructure/persistence"
	infrapdf "github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-local/internal/interfaces/http"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Slot de estado en SQLite local
	slot, err := persistence.NewSQLiteSlot(cfg.Store.Path, cfg.Store.Slot, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir el slot de estado")
	}
	defer slot.Close()

	// Store central: única fuente de verdad del estado
	st := store.New(slot, log)
	st.Restore()

	// Monitor de sesión: cierra la sesión expirada desde su propio ticker
	ctx, cancelMonitor := context.WithCancel(context.Background())
	defer cancelMonitor()
	monitor := store.NewMonitor(st, log, time.Duration(cfg.Session.PollSeconds)*time.Second)
	go monitor.Run(ctx)

	// Asistente: proveedor según configuración. La API key guardada en las
	// preferencias tiene prioridad sobre la de la configuración.
	settingsKey := func() string { return st.GetState().Settings.APIKey }
	var assistantSvc ports.AssistantService
	switch cfg.AI.Provider {
	case "gemini":
		svc := infraai.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model)
		svc.UseKeySource(settingsKey)
		assistantSvc = svc
	default:
		svc := infraai.NewAnthropicService(cfg.AI.APIKey, cfg.AI.Model)
		svc.UseKeySource(settingsKey)
		assistantSvc = svc
	}

	itemUC := usecase.NewItemUseCase(st)
	categoryUC := usecase.NewCategoryUseCase(st)
	activityUC := usecase.NewActivityUseCase(st)
	settingsUC := usecase.NewSettingsUseCase(st)
	scanUC := usecase.NewScanUseCase(st)
	assistantUC := usecase.NewAssistantUseCase(st, assistantSvc, log)
	reportUC := usecase.NewReportUseCase(st, infrapdf.NewMarotoReportGenerator(), cfg.App.Name)
	authUC := auth.NewAuthUseCase(st, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: int(store.SessionTTL / time.Minute),
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		CategoryUC:  categoryUC,
		ActivityUC:  activityUC,
		SettingsUC:  settingsUC,
		ScanUC:      scanUC,
		AssistantUC: assistantUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		Store:       st,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancelMonitor()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
