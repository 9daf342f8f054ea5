package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/store"
	"github.com/akhmadiev/storefront/models"
)

func TestListProducts(t *testing.T) {
	repo := &mockProductRepository{
		getAllProductsFn: func(_ context.Context) ([]models.Product, error) {
			return []models.Product{{ID: 1, Name: "apple", Price: 0.5, Quantity: 100}}, nil
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "apple", products[0].Name)
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := NewCatalogService(&mockProductRepository{}, logger.Nop())

	tests := []struct {
		name    string
		product models.Product
	}{
		{"empty name", models.Product{Price: 1, Quantity: 1}},
		{"negative price", models.Product{Name: "apple", Price: -1, Quantity: 1}},
		{"negative quantity", models.Product{Name: "apple", Price: 1, Quantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tt.product)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestCreateProduct_Success(t *testing.T) {
	repo := &mockProductRepository{
		createProductFn: func(_ context.Context, product models.Product) (models.Product, error) {
			product.ID = 1
			return product, nil
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	created, err := svc.CreateProduct(context.Background(), models.Product{Name: "apple", Price: 0.5, Quantity: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := &mockProductRepository{
		getProductFn: func(_ context.Context, _ int64) (models.Product, error) {
			return models.Product{}, store.ErrProductNotFound
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	_, err := svc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestUpdateProduct_EmptyUpdateReturnsCurrent(t *testing.T) {
	current := models.Product{ID: 5, Name: "apple", Price: 0.5, Quantity: 100}
	repo := &mockProductRepository{
		updateProductFn: func(_ context.Context, _ int64, _ models.ProductUpdate) (models.Product, error) {
			return models.Product{}, store.ErrEmptyUpdate
		},
		getProductFn: func(_ context.Context, id int64) (models.Product, error) {
			require.Equal(t, int64(5), id)
			return current, nil
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	got, err := svc.UpdateProduct(context.Background(), 5, models.ProductUpdate{})
	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestUpdateProduct_Validation(t *testing.T) {
	svc := NewCatalogService(&mockProductRepository{}, logger.Nop())

	badPrice := -1.0
	_, err := svc.UpdateProduct(context.Background(), 5, models.ProductUpdate{Price: &badPrice})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	repo := &mockProductRepository{
		updateProductFn: func(_ context.Context, _ int64, _ models.ProductUpdate) (models.Product, error) {
			return models.Product{}, store.ErrProductNotFound
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	name := "pear"
	_, err := svc.UpdateProduct(context.Background(), 404, models.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockProductRepository{
			deleteProductFn: func(_ context.Context, _ int64) error { return nil },
		}
		svc := NewCatalogService(repo, logger.Nop())
		assert.NoError(t, svc.DeleteProduct(context.Background(), 5))
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockProductRepository{
			deleteProductFn: func(_ context.Context, _ int64) error { return store.ErrProductNotFound },
		}
		svc := NewCatalogService(repo, logger.Nop())
		assert.ErrorIs(t, svc.DeleteProduct(context.Background(), 404), store.ErrProductNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &mockProductRepository{
			deleteProductFn: func(_ context.Context, _ int64) error { return errors.New("db down") },
		}
		svc := NewCatalogService(repo, logger.Nop())
		err := svc.DeleteProduct(context.Background(), 5)
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrProductNotFound)
	})
}
