// @title ThesisTrack API
// @version 1.0
// @description Postgraduate thesis defense tracking: stage progression, weighted scoring, panels and defense scheduling.

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"thesistrack_backend/internal/app"
	"thesistrack_backend/internal/config"
	"thesistrack_backend/pkg/configwatcher"
	"thesistrack_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.RegisterConfigCallback(func(*config.Config) {
		logger.Log.Info("Configuration reloaded")
	})
	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
