package service

import (
	"context"

	"github.com/akhmadiev/storefront/models"
)

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveUser(ctx context.Context, email string) (models.User, error)

	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error

	ListUsers(ctx context.Context) ([]models.User, error)
	SweepExpiredResetTokens(ctx context.Context) (int, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
