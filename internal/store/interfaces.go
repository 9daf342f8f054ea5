package store

import (
	"context"

	"github.com/akhmadiev/storefront/models"
)

// UserRepository is the credential store: persisted user accounts with
// their password hashes and one-shot reset tokens.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// server-assigned ID. Returns [ErrEmailAlreadyExists] when the email
	// is already taken (enforced by the store's unique constraint).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetAllUsers returns every user's non-sensitive fields
	// (id, name, email) in implementation-defined order.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// SetResetToken stores token as the user's single live reset token,
	// replacing any previous one.
	SetResetToken(ctx context.Context, userID int64, token string) error

	// ResetPassword sets a new password hash and clears the stored reset
	// token in a single statement.
	ResetPassword(ctx context.Context, userID int64, passwordHash string) error

	// UsersWithResetToken returns users that currently hold a stored
	// reset token. Used by the reset-token sweeper.
	UsersWithResetToken(ctx context.Context) ([]models.User, error)

	// ClearResetToken removes the user's stored reset token without
	// touching the password.
	ClearResetToken(ctx context.Context, userID int64) error
}

// ProductRepository is the catalog store.
type ProductRepository interface {
	// GetAllProducts returns every product in implementation-defined order.
	GetAllProducts(ctx context.Context) ([]models.Product, error)

	// CreateProduct persists a new product and returns it with the
	// server-assigned ID.
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)

	// GetProduct returns the product with the given id or [ErrProductNotFound].
	GetProduct(ctx context.Context, id int64) (models.Product, error)

	// UpdateProduct applies a partial update: only non-nil fields of
	// update overwrite stored values. Returns the updated product or
	// [ErrProductNotFound].
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)

	// DeleteProduct removes the product or returns [ErrProductNotFound].
	DeleteProduct(ctx context.Context, id int64) error
}

// ErrorClassificator maps backend-specific driver errors to portable
// classifications so repositories stay backend-agnostic.
type ErrorClassificator interface {
	// Classify inspects a driver-level error. Unrecognised (and nil)
	// errors classify as [Unclassified].
	Classify(err error) ErrorClassification
}
