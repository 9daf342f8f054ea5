package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/store"
	"github.com/akhmadiev/storefront/internal/utils"
	"github.com/akhmadiev/storefront/models"
)

const tokenHeader = "x-access-token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the token from the "x-access-token" header, validates it via
// [service.AuthService.ParseToken], resolves the account named by the
// token's subject, and stores the resolved user in the request context
// under [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The header is absent or empty → {"message": "Token is missing"}.
//   - The token fails validation (bad signature, wrong issuer, expired,
//     malformed) → {"message": "Invalid token", "error": ...}.
//   - The token is valid but its user no longer exists. A token must never
//     outlive its account.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(tokenHeader)
		if tokenString == "" {
			log.Error().Msg("missing access token")
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: "Token is missing"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			_, _ = utils.WriteJSON(w, models.ErrorResponse{
				Message: "Invalid token",
				Error:   err.Error(),
			}, http.StatusUnauthorized)
			return
		}

		currentUser, err := h.services.AuthService.ResolveUser(ctx, token.GetEmail())
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Error().Str("email", token.GetEmail()).Msg("token refers to a missing user")
			} else {
				log.Err(err).Msg("error occurred during user resolution")
			}
			_, _ = utils.WriteJSON(w, models.ErrorResponse{
				Message: "Invalid token",
				Error:   "unknown user",
			}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, currentUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
