package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/akhmadiev/storefront/models"
)

// HTTPClientConfig carries the knobs for NewHTTPAPIClient. Zero values fall
// back to localhost and a 15 second timeout.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs the REST implementation of [APIClient] on top
// of a resty client.
func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) SignUp(ctx context.Context, name, email, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
		}).
		Post("/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	if resp.StatusCode() == http.StatusAccepted {
		return ErrUserAlreadyExists
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":    email,
			"password": password,
		}).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(tr.Token)
	return tr.Token, nil
}

func (h *httpAPIClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"email": email}).
		Post("/forgot-password")
	if err != nil {
		return "", fmt.Errorf("forgot-password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var rr models.ResetTokenResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return "", fmt.Errorf("decode forgot-password response: %w", err)
	}

	return rr.Token, nil
}

func (h *httpAPIClient) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":    email,
			"token":    resetToken,
			"password": newPassword,
		}).
		Post("/reset-password")
	if err != nil {
		return fmt.Errorf("reset-password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Users(ctx context.Context) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ur models.UsersResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	return ur.Users, nil
}

func (h *httpAPIClient) Products(ctx context.Context) ([]models.Product, error) {
	resp, err := h.authedRequest(ctx).Get("/products")
	if err != nil {
		return nil, fmt.Errorf("products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pr models.ProductsResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("decode products response: %w", err)
	}

	return pr.Products, nil
}

func (h *httpAPIClient) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	resp, err := h.authedRequest(ctx).
		SetFormData(map[string]string{
			"name":     product.Name,
			"price":    strconv.FormatFloat(product.Price, 'f', -1, 64),
			"quantity": strconv.FormatInt(product.Quantity, 10),
		}).
		Post("/products")
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return decodeProduct(resp.Body())
}

func (h *httpAPIClient) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	resp, err := h.authedRequest(ctx).Get(productPath(id))
	if err != nil {
		return models.Product{}, fmt.Errorf("get product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return decodeProduct(resp.Body())
}

func (h *httpAPIClient) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	form := map[string]string{}
	if update.Name != nil {
		form["name"] = *update.Name
	}
	if update.Price != nil {
		form["price"] = strconv.FormatFloat(*update.Price, 'f', -1, 64)
	}
	if update.Quantity != nil {
		form["quantity"] = strconv.FormatInt(*update.Quantity, 10)
	}

	resp, err := h.authedRequest(ctx).
		SetFormData(form).
		Put(productPath(id))
	if err != nil {
		return models.Product{}, fmt.Errorf("update product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return decodeProduct(resp.Body())
}

func (h *httpAPIClient) DeleteProduct(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(productPath(id))
	if err != nil {
		return fmt.Errorf("delete product request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("x-access-token", token)
	}
	return req
}

func productPath(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10)
}

func decodeProduct(body []byte) (models.Product, error) {
	var product models.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return models.Product{}, fmt.Errorf("decode product response: %w", err)
	}
	return product, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
