package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/store"
	"github.com/akhmadiev/storefront/internal/validators"
	"github.com/akhmadiev/storefront/models"
)

// catalogService is the concrete implementation of CatalogService: input
// validation in front of the ProductRepository, nothing more.
type catalogService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

func NewCatalogService(productRepository store.ProductRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (c *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := c.productRepository.GetAllProducts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing products failed")
		return nil, fmt.Errorf("listing products failed: %w", err)
	}

	return products, nil
}

// CreateProduct validates and persists a new product.
//
// Returns ErrInvalidDataProvided when the name is empty or price/quantity
// are negative; otherwise the stored product with its assigned ID.
func (c *catalogService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateProduct(product); err != nil {
		log.Error().Err(err).Msg("invalid product data provided")
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := c.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return created, nil
}

func (c *catalogService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	product, err := c.productRepository.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return models.Product{}, store.ErrProductNotFound
		}

		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("product lookup failed")
		return models.Product{}, fmt.Errorf("product lookup failed: %w", err)
	}

	return product, nil
}

// UpdateProduct applies a partial update. Fields absent from the update keep
// their stored values; an update that carries nothing at all is a no-op that
// returns the current record.
func (c *catalogService) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateProductUpdate(update); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("invalid product update provided")
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := c.productRepository.UpdateProduct(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrEmptyUpdate) {
			return c.GetProduct(ctx, id)
		}
		if errors.Is(err, store.ErrProductNotFound) {
			return models.Product{}, store.ErrProductNotFound
		}

		log.Err(err).Int64("id", id).Msg("product update failed")
		return models.Product{}, fmt.Errorf("product update failed: %w", err)
	}

	return updated, nil
}

func (c *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.productRepository.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return store.ErrProductNotFound
		}

		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("product deletion failed")
		return fmt.Errorf("product deletion failed: %w", err)
	}

	return nil
}
