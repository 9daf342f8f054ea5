// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a typed client for the storefront REST API.
//
// The primary abstraction is [APIClient], which decouples callers from the
// transport details: form encoding, the x-access-token header, and the
// mapping of HTTP status codes to the sentinel errors defined in errors.go
// ([ErrUnauthorized] for 401, [ErrNotFound] for 404, [ErrUserAlreadyExists]
// for a 202 signup).
package adapter

import (
	"context"

	"github.com/akhmadiev/storefront/models"
)

// APIClient defines typed communication with the storefront server.
// Implementations are responsible for serialisation, token management, and
// mapping transport-level errors to this package's sentinel values.
type APIClient interface {
	// SetToken stores the access token attached to all subsequent
	// authenticated requests. Called automatically after a successful Login.
	SetToken(token string)

	// Token returns the access token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp registers a new account. Returns ErrUserAlreadyExists when the
	// email is already registered.
	SignUp(ctx context.Context, name, email, password string) error

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, email, password string) (string, error)

	// ForgotPassword requests a password-reset token for the given email.
	ForgotPassword(ctx context.Context, email string) (string, error)

	// ResetPassword completes the reset flow with a token obtained from
	// ForgotPassword.
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error

	// Users lists all registered users. Requires a stored token.
	Users(ctx context.Context) ([]models.User, error)

	// Products lists the whole catalog. Requires a stored token.
	Products(ctx context.Context) ([]models.Product, error)

	// CreateProduct adds a product and returns the stored record.
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)

	// GetProduct fetches one product by ID. Returns ErrNotFound when absent.
	GetProduct(ctx context.Context, id int64) (models.Product, error)

	// UpdateProduct applies a partial update; nil fields are left untouched
	// server-side. Returns the updated record.
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)

	// DeleteProduct removes one product by ID. Returns ErrNotFound when absent.
	DeleteProduct(ctx context.Context, id int64) error
}
