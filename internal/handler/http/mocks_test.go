package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/akhmadiev/storefront/internal/config"
	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/service"
	"github.com/akhmadiev/storefront/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn         func(ctx context.Context, name, email, password string) (models.User, error)
	loginFn          func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	resolveUserFn    func(ctx context.Context, email string) (models.User, error)
	forgotPasswordFn func(ctx context.Context, email string) (string, error)
	resetPasswordFn  func(ctx context.Context, email, resetToken, newPassword string) error
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	sweepFn          func(ctx context.Context) (int, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	return m.signUpFn(ctx, name, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, email string) (models.User, error) {
	return m.resolveUserFn(ctx, email)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return m.forgotPasswordFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	return m.resetPasswordFn(ctx, email, resetToken, newPassword)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAuthService) SweepExpiredResetTokens(ctx context.Context) (int, error) {
	return m.sweepFn(ctx)
}

// mockCatalogService implements service.CatalogService for unit tests.
type mockCatalogService struct {
	listProductsFn  func(ctx context.Context) ([]models.Product, error)
	createProductFn func(ctx context.Context, product models.Product) (models.Product, error)
	getProductFn    func(ctx context.Context, id int64) (models.Product, error)
	updateProductFn func(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	deleteProductFn func(ctx context.Context, id int64) error
}

func (m *mockCatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return m.listProductsFn(ctx)
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return m.createProductFn(ctx, product)
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return m.getProductFn(ctx, id)
}

func (m *mockCatalogService) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	return m.updateProductFn(ctx, id, update)
}

func (m *mockCatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return m.deleteProductFn(ctx, id)
}

// newTestHandler builds a Handler with the given service mocks. Either mock
// may be nil when the test does not exercise that surface.
func newTestHandler(t *testing.T, auth service.AuthService, catalog service.CatalogService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		CatalogService: catalog,
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// passingAuth returns an AuthService mock whose token gate always admits
// the request as the given user.
func passingAuth(user models.User) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Email: user.Email}, nil
		},
		resolveUserFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}
}

// formRequest builds a form-encoded request the way a browser would send it.
func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
