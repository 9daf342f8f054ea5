package service

import (
	"context"

	"github.com/akhmadiev/storefront/models"
)

// mockUserRepository is a hand-written stub for store.UserRepository.
// Tests set only the fn fields they need; calling an unset method panics,
// which surfaces unexpected repository usage immediately.
type mockUserRepository struct {
	createUserFn          func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn     func(ctx context.Context, email string) (models.User, error)
	getAllUsersFn         func(ctx context.Context) ([]models.User, error)
	setResetTokenFn       func(ctx context.Context, userID int64, token string) error
	resetPasswordFn       func(ctx context.Context, userID int64, passwordHash string) error
	usersWithResetTokenFn func(ctx context.Context) ([]models.User, error)
	clearResetTokenFn     func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserRepository) SetResetToken(ctx context.Context, userID int64, token string) error {
	return m.setResetTokenFn(ctx, userID, token)
}

func (m *mockUserRepository) ResetPassword(ctx context.Context, userID int64, passwordHash string) error {
	return m.resetPasswordFn(ctx, userID, passwordHash)
}

func (m *mockUserRepository) UsersWithResetToken(ctx context.Context) ([]models.User, error) {
	return m.usersWithResetTokenFn(ctx)
}

func (m *mockUserRepository) ClearResetToken(ctx context.Context, userID int64) error {
	return m.clearResetTokenFn(ctx, userID)
}

// mockProductRepository is a hand-written stub for store.ProductRepository.
type mockProductRepository struct {
	getAllProductsFn func(ctx context.Context) ([]models.Product, error)
	createProductFn  func(ctx context.Context, product models.Product) (models.Product, error)
	getProductFn     func(ctx context.Context, id int64) (models.Product, error)
	updateProductFn  func(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	deleteProductFn  func(ctx context.Context, id int64) error
}

func (m *mockProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return m.getAllProductsFn(ctx)
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return m.createProductFn(ctx, product)
}

func (m *mockProductRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return m.getProductFn(ctx, id)
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	return m.updateProductFn(ctx, id, update)
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	return m.deleteProductFn(ctx, id)
}
