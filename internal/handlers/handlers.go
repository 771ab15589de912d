package handlers

import (
	"OptiTools/internal/config"
	"OptiTools/internal/middleware"
	"OptiTools/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров заглушки провайдера
func NewHandler(
	bulkService *service.BulkService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)

	bulkHandler := NewBulkHandler(bulkService, logger)

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithBasicAuth(config.APIKey, config.APISecret))
		r.Post("/bulkmessages", bulkHandler.Send)
	})
	r.Get("/messages", bulkHandler.List)

	return &Handler{Router: r}
}
