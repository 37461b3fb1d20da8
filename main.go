package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rsvp.link/configs"
	"rsvp.link/configs/configslog"
	"rsvp.link/database"
	"rsvp.link/handlers"
	"rsvp.link/repositories"
	"rsvp.link/routes"
	"rsvp.link/services"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()
	backend := cfg.SelectedBackend()
	configslog.SLog.Infof("Starting with %s backend", backend)

	var store repositories.IStore
	switch backend {
	case configs.BackendPostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			os.Exit(1)
		}
		defer database.CloseDB(db)
		if err := database.Initialize(db, true, true, cfg.AdminFirstName, cfg.AdminLastName); err != nil {
			configslog.Log.Error("Database initialization failed", zap.Error(err))
			os.Exit(1)
		}
		store = repositories.NewGormStore(db)
	default:
		csvStore, err := repositories.NewCSVStore(cfg.DataDir)
		if err != nil {
			configslog.Log.Error("CSV store setup failed", zap.String("dataDir", cfg.DataDir), zap.Error(err))
			os.Exit(1)
		}
		store = csvStore
	}

	guestService := services.NewGuestService(store)
	familyService := services.NewFamilyService(store)
	rsvpService := services.NewRSVPService(store)
	reportService := services.NewReportService(store)

	sessions := configs.SetupSession()

	app := fiber.New(fiber.Config{
		AppName: "rsvp.link",
	})

	routes.SetupRoutes(app, routes.Handlers{
		Auth:   handlers.NewAuthHandler(guestService, sessions),
		RSVP:   handlers.NewRSVPHandler(guestService, rsvpService, sessions),
		Admin:  handlers.NewAdminHandler(familyService, guestService, reportService),
		Health: handlers.NewHealthHandler(backend, cfg.DataDir),
	}, sessions)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		configslog.SLog.Info("Shutdown signal received, stopping server...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Error("Server stopped", zap.Error(err))
		os.Exit(1)
	}
}
