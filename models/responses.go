package models

// UsersResponse is the payload of GET /users. Only non-sensitive user
// fields are included; password hashes and reset tokens never leave the
// server.
type UsersResponse struct {
	Users []User `json:"users"`
}

// ProductsResponse is the payload of GET /products.
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// TokenResponse is the payload of a successful POST /login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ResetTokenResponse is the payload of a successful POST /forgot-password.
// The token is returned in the body because no out-of-band delivery
// channel (e.g. email) exists; callers present it to /reset-password.
type ResetTokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the JSON error shape used by the auth middleware.
// Error carries the underlying failure description and is omitted when
// empty.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
