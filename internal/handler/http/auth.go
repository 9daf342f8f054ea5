package http

import (
	"errors"
	"net/http"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/service"
	"github.com/akhmadiev/storefront/internal/store"
	"github.com/akhmadiev/storefront/internal/utils"
	"github.com/akhmadiev/storefront/models"
)

// index is the unauthenticated liveness endpoint.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteText(w, "<p>Hello, World!</p>", http.StatusOK)
}

// login authenticates a user by email and password (form-encoded) and
// responds with 201 and a JSON body carrying the signed session token.
//
// Error responses:
//   - 400 "Missing parameters" when email or password is absent.
//   - 401 "User does not exist" for an unknown email.
//   - 401 "Incorrect credentials" for a wrong password.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed form body")
		_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("missing login parameters")
			_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			_, _ = utils.WriteText(w, "User does not exist", http.StatusUnauthorized)
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			_, _ = utils.WriteText(w, "Incorrect credentials", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusCreated)
}

// signup registers a new user from a form-encoded body (name, email,
// password).
//
// Responses:
//   - 400 "Missing parameters" when any field is absent.
//   - 202 "User already exists. Please Log in." when the email is taken;
//     the unique constraint keeps this correct even when two signups race.
//   - 201 "Successfully registered." on success.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed form body")
		_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if _, err := h.services.AuthService.SignUp(ctx, name, email, password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("missing signup parameters")
			_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", email).Msg("email already registered")
			_, _ = utils.WriteText(w, "User already exists. Please Log in.", http.StatusAccepted)
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	_, _ = utils.WriteText(w, "Successfully registered.", http.StatusCreated)
}

// forgotPassword issues a password-reset token for the supplied email and
// returns it in the JSON response. There is no mail delivery; the caller
// relays the token to the user out of band.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed form body")
		_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")

	resetToken, err := h.services.AuthService.ForgotPassword(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("missing forgot-password parameters")
			_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			_, _ = utils.WriteText(w, "User does not exist", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during forgot-password")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	_, _ = utils.WriteJSON(w, models.ResetTokenResponse{
		Message: "Successfully sent verification token.",
		Token:   resetToken,
	}, http.StatusOK)
}

// resetPassword completes the reset flow: the form carries email, the reset
// token from forgot-password, and the new password.
//
// Responses:
//   - 400 "Missing parameters" when any field is absent.
//   - 401 "User does not exist" for an unknown email.
//   - 401 "Invalid token" when the token does not match the stored one or
//     is stale.
//   - 200 "Successfully reset password." on success.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed form body")
		_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	resetToken := r.PostFormValue("token")
	password := r.PostFormValue("password")

	if err := h.services.AuthService.ResetPassword(ctx, email, resetToken, password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("missing reset-password parameters")
			_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			_, _ = utils.WriteText(w, "User does not exist", http.StatusUnauthorized)
		case errors.Is(err, service.ErrResetTokenMismatch):
			log.Err(err).Msg("reset token rejected")
			_, _ = utils.WriteText(w, "Invalid token", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during reset-password")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	_, _ = utils.WriteText(w, "Successfully reset password.", http.StatusOK)
}
