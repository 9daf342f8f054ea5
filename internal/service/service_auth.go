package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/akhmadiev/storefront/internal/config"
	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/store"
	"github.com/akhmadiev/storefront/internal/utils"
	"github.com/akhmadiev/storefront/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, JWT lifecycle
// and the password-reset flow, using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// secretKey is the HMAC secret used to sign and verify JWT tokens,
	// including password-reset tokens.
	secretKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero means tokens are issued without an "exp" claim.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		secretKey:      cfg.SecretKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// It validates that name, email and password are all non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists when the email is already registered; the
//     unique constraint on users.email makes this reliable even when two
//     signups race.
//   - A wrapped storage error for any other repository failure.
func (a *authService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, store.ErrEmailAlreadyExists
		}

		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that email and password are non-empty, looks up the account
// by email, and compares the supplied password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, password) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured secret, carries the configured
// issuer as the "iss" claim and the user's email as "sub", and expires after
// tokenDuration (no "exp" claim when the duration is zero).
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.secretKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrInvalidToken so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.secretKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// ResolveUser looks up the account a validated token refers to. The auth
// gate uses it to fail closed when a token outlives its user.
func (a *authService) ResolveUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return foundUser, nil
}

// ForgotPassword issues a password-reset token for the given email and
// persists it as the user's single live reset token.
//
// The token is a JWT built with the same signing primitive as session
// tokens; the random jti claim makes successive requests produce distinct
// tokens even within the same second.
//
// Returns the signed token string or:
//   - ErrInvalidDataProvided if email is empty.
//   - A wrapped storage error if the user does not exist or the token
//     cannot be stored.
func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("invalid forgot-password data provided")
		return "", ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Email, a.tokenDuration, a.secretKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.userRepository.SetResetToken(ctx, foundUser.ID, token.SignedString); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("storing reset token failed")
		return "", fmt.Errorf("storing reset token failed: %w", err)
	}

	return token.SignedString, nil
}

// ResetPassword completes the password-reset flow.
//
// The supplied token must byte-for-byte match the user's stored reset token
// and must still parse as a valid JWT (an expired token is stale even if it
// matches). On success the new password hash is written and the stored token
// cleared in a single statement, so a consumed token cannot be replayed.
//
// Returns:
//   - ErrInvalidDataProvided if any argument is empty.
//   - A wrapped storage error if the user lookup fails.
//   - ErrResetTokenMismatch when no token is stored, the tokens differ, or
//     the stored token no longer validates.
func (a *authService) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	log := logger.FromContext(ctx)

	if email == "" || resetToken == "" || newPassword == "" {
		log.Error().Str("email", email).Msg("invalid reset-password data provided")
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.ResetToken == "" ||
		subtle.ConstantTimeCompare([]byte(foundUser.ResetToken), []byte(resetToken)) != 1 {
		log.Error().Int64("id", foundUser.ID).Msg("reset token mismatch")
		return ErrResetTokenMismatch
	}

	if _, err := utils.ValidateAndParseJWTToken(resetToken, a.secretKey, a.tokenIssuer); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("stale reset token")
		return ErrResetTokenMismatch
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.ResetPassword(ctx, foundUser.ID, passwordHash); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("resetting password failed")
		return fmt.Errorf("resetting password failed: %w", err)
	}

	return nil
}

// ListUsers returns every registered user with sensitive fields omitted.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.GetAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// SweepExpiredResetTokens clears stored reset tokens that no longer parse
// as valid JWTs (expired, or signed with a rotated secret). Returns the
// number of tokens cleared. Used by the background sweeper.
func (a *authService) SweepExpiredResetTokens(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.UsersWithResetToken(ctx)
	if err != nil {
		log.Err(err).Msg("loading users with reset tokens failed")
		return 0, fmt.Errorf("loading users with reset tokens failed: %w", err)
	}

	cleared := 0
	for _, user := range users {
		if _, err := utils.ValidateAndParseJWTToken(user.ResetToken, a.secretKey, a.tokenIssuer); err == nil {
			continue
		}

		if err := a.userRepository.ClearResetToken(ctx, user.ID); err != nil {
			log.Err(err).Int64("id", user.ID).Msg("clearing stale reset token failed")
			continue
		}
		cleared++
	}

	return cleared, nil
}
