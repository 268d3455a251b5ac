package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "storefront"
	cfg.Session.TokenSecret = secret
	cfg.Session.TokenExpiry = time.Hour
	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	tm := NewTokenManager(testConfig("this-is-a-test-secret-of-32-chars!!"))

	token, err := tm.Generate("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	minted := NewTokenManager(testConfig("this-is-a-test-secret-of-32-chars!!"))
	other := NewTokenManager(testConfig("a-completely-different-secret-value"))

	token, err := minted.Generate("session-123")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testConfig("this-is-a-test-secret-of-32-chars!!"))

	_, err := tm.Validate("not.a.token")
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := testConfig("this-is-a-test-secret-of-32-chars!!")
	cfg.Session.TokenExpiry = -time.Minute
	tm := NewTokenManager(cfg)

	token, err := tm.Generate("session-123")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Empty(t, ExtractTokenFromHeader("abc123"))
	assert.Empty(t, ExtractTokenFromHeader("Bearer"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}
