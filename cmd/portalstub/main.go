package main

import (
	"OptiTools/internal/config"
	"OptiTools/internal/handlers"
	"OptiTools/internal/middleware"
	"OptiTools/internal/repo"
	"OptiTools/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.StubDatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	if err := repo.Migrate(gormDB); err != nil {
		sugar.Fatalw("failed to migrate database", "error", err)
	}

	bulkService := service.NewBulkService(repo.NewMessageRepository(gormDB))
	h := handlers.NewHandler(bulkService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting portal stub",
		"addr", addr,
		"auth", cfg.APIKey != "",
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
