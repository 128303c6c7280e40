package handlers

import (
	"HomeCrew/internal/config"
	"HomeCrew/internal/middleware"
	"HomeCrew/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires the routes to their handlers.
func NewHandler(
	userService *service.UserService,
	recordService *service.RecordService,
	assetService *service.AssetService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	recordHandler := NewRecordHandler(recordService, logger)
	assetHandler := NewAssetHandler(assetService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// Record routes
	r.Post("/api/records", recordHandler.Create)
	r.Post("/api/records/query", recordHandler.Query)
	r.Get("/api/records/{id}", recordHandler.Get)
	r.Put("/api/records/{id}", recordHandler.Update)
	r.Delete("/api/records/{id}", recordHandler.Delete)

	// Asset routes
	r.Post("/api/assets", assetHandler.Upload)
	r.Get("/api/assets/{id}", assetHandler.Download)

	return &Handler{Router: r}
}
