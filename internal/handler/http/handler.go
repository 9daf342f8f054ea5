package http

import (
	"github.com/akhmadiev/storefront/internal/config"
	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/service"
)

type Handler struct {
	services *service.Services

	// corsAllowedOrigin is the single origin granted cross-origin access.
	// Empty disables CORS handling entirely.
	corsAllowedOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		corsAllowedOrigin: cfg.CORSAllowedOrigin,
		logger:            logger,
	}
}
