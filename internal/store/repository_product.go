package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/models"
)

// productRepository is the SQL-backed implementation of [ProductRepository].
// Product queries are composed with squirrel builders (see sql_queries.go)
// because the partial-update statement depends on which fields the caller
// supplied.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllProducts returns every product in the catalog.
func (r *productRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllProductsQuery()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetAllProducts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetAllProducts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Quantity); err != nil {
			log.Err(err).Str("func", "*productRepository.GetAllProducts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// CreateProduct persists a new product and returns the stored record with
// the server-assigned ID.
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateProductQuery(product)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Product
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Name, &created.Price, &created.Quantity); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: creating product failed")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetProduct returns the product with the given id, or [ErrProductNotFound]
// when no such row exists.
func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProductQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var product models.Product
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&product.ID, &product.Name, &product.Price, &product.Quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error scanning row")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}

// UpdateProduct applies the non-nil fields of update to the product with the
// given id and returns the resulting record.
//
// Error handling:
//   - update carries no fields → [ErrEmptyUpdate]; the caller decides
//     whether to treat that as a no-op.
//   - no product with the given id → [ErrProductNotFound].
func (r *productRepository) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(id, update)
	if err != nil {
		if errors.Is(err, ErrEmptyUpdate) {
			return models.Product{}, ErrEmptyUpdate
		}

		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Product
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Price, &updated.Quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: updating product failed")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteProduct removes the product with the given id. Returns
// [ErrProductNotFound] when nothing was deleted.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
