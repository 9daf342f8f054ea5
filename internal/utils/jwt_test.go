package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "storefront-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "john@example.com", token.Email)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name          string
		issuer, email string
		signKey       string
	}{
		{"empty issuer", "", "john@example.com", testSignKey},
		{"empty email", testIssuer, "", testSignKey},
		{"empty sign key", testIssuer, "john@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, time.Hour, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestGenerateJWTToken_UniquePerCall(t *testing.T) {
	first, err := GenerateJWTToken(testIssuer, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)
	second, err := GenerateJWTToken(testIssuer, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	// the jti claim must make otherwise identical tokens differ
	assert.NotEqual(t, first.SignedString, second.SignedString)
}

func TestValidateAndParseJWTToken_Roundtrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", parsed.Email)
}

func TestValidateAndParseJWTToken_NoExpiry(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "john@example.com", 0, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.NoError(t, err)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		signKey string
		issuer  string
	}{
		{"wrong sign key", token.SignedString, "other-key", testIssuer},
		{"wrong issuer", token.SignedString, testSignKey, "other-issuer"},
		{"malformed token", "not.a.token", testSignKey, testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.signKey, tt.issuer)
			assert.Error(t, err)
		})
	}
}
