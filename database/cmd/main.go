package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"rsvp.link/configs"
	"rsvp.link/configs/configslog"
	"rsvp.link/database"
	"rsvp.link/repositories"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Seed the admin family and admin guest")
	importFlag := flag.Bool("import-csv", false, "Import CSV data into the relational store")
	flag.Parse()

	cfg := configs.LoadConfig()
	if cfg.DatabaseURL == "" {
		configslog.SLog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		os.Exit(1)
	}
	defer database.CloseDB(db)

	if err := database.Initialize(db, *migrateFlag, *seedFlag, cfg.AdminFirstName, cfg.AdminLastName); err != nil {
		configslog.Log.Error("Database initialization failed", zap.Error(err))
		os.Exit(1)
	}

	if *importFlag {
		csvStore, err := repositories.NewCSVStore(cfg.DataDir)
		if err != nil {
			configslog.Log.Error("CSV store open failed", zap.String("dataDir", cfg.DataDir), zap.Error(err))
			os.Exit(1)
		}
		if err := database.ImportFromCSV(context.Background(), csvStore, repositories.NewGormStore(db)); err != nil {
			configslog.Log.Error("CSV import failed", zap.Error(err))
			os.Exit(1)
		}
		configslog.SLog.Info("CSV import completed successfully")
	}
}
