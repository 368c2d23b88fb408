package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/api"
	"github.com/204g1a3204/sleep-disorder-app/internal/auth"
	"github.com/204g1a3204/sleep-disorder-app/internal/config"
	"github.com/204g1a3204/sleep-disorder-app/internal/migrate"
	"github.com/204g1a3204/sleep-disorder-app/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	var users storage.UserRepository
	var reports storage.ReportRepository

	switch cfg.DBType {
	case "postgres":
		if err := migrate.Up(context.Background(), cfg.DBDSN); err != nil {
			logger.Fatalf("failed to run migrations: %v", err)
		}
		users, reports, err = storage.NewPostgresRepositories(cfg.DBDSN, logger)
	default:
		if dir := filepath.Dir(cfg.FileUsers); dir != "." {
			if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
				logger.Fatalf("failed to create data dir: %v", mkErr)
			}
		}
		users, reports, err = storage.NewFileRepositories(cfg.FileUsers, cfg.FileReports, logger)
	}
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	admin := auth.NewAdminGate(cfg.AdminEmail, cfg.AdminPassword, cfg.MasterRecoveryKey)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	api.RegisterRoutes(r, api.NewApp(logger, users, reports, admin))

	addr := ":" + cfg.Port
	logger.Infof("server running on %s (env=%s, storage=%s)", addr, cfg.Env, cfg.DBType)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
