package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/akhmadiev/storefront/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token asserting the given email.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account email
//   - IssuedAt  (iat): the current time
//   - ID        (jti): a random UUID, so successive tokens for the same
//     subject differ
//   - ExpiresAt (exp): the current time plus tokenDuration; omitted
//     entirely when tokenDuration is zero, producing a non-expiring token
//
// Issuer, email, and signKey are required. Returns an error if any of them
// are empty or signing fails.
func GenerateJWTToken(issuer, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || email == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  email,
		IssuedAt: jwt.NewNumericDate(now),
		ID:       uuid.NewString(),
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Email: email}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check when the claim is present
//   - Subject (sub) claim presence, returned as the account email
//
// Returns the parsed token model or a wrapped error if validation fails or
// the subject claim is missing.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	email, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if email == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, Email: email}, nil
}
