package main

import (
	"HomeCrew/internal/config"
	"HomeCrew/internal/handlers"
	"HomeCrew/internal/middleware"
	"HomeCrew/internal/repo"
	"HomeCrew/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userService := service.NewUserService(repo.NewUserRepository(gormDB))
	recordService := service.NewRecordService(repo.NewRecordRepository(gormDB), sugar)
	assetService := service.NewAssetService(repo.NewAssetRepository(gormDB), cfg.DataDir, sugar)

	h := handlers.NewHandler(userService, recordService, assetService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DataDir", cfg.DataDir,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
