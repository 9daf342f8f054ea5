package service

import (
	"github.com/akhmadiev/storefront/internal/config"
	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/store"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		CatalogService: NewCatalogService(storages.ProductRepository, logger),
	}
}
