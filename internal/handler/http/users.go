package http

import (
	"net/http"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/utils"
	"github.com/akhmadiev/storefront/models"
)

// getAllUsers returns every registered user as {"users": [...]}. Password
// hashes and reset tokens are excluded at the model level.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if currentUser, ok := utils.GetCurrentUserFromContext(r.Context()); ok {
		log.Debug().Str("email", currentUser.Email).Msg("users listing requested")
	}

	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during users listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}
