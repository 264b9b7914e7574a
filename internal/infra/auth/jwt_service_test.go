package auth

import (
	"testing"
	"time"

	"ecomshop/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  5 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndVerifyTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	sessionID := uuid.New()
	userID := uuid.New()

	accessToken, err := jwtService.IssueAccessToken(sessionID, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := jwtService.IssueRefreshToken(sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, sessionID, accessClaims.SessionID)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := jwtService.VerifyRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, sessionID, refreshClaims.SessionID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), refreshClaims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_KeysAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	sessionID := uuid.New()
	userID := uuid.New()

	accessToken, err := jwtService.IssueAccessToken(sessionID, userID)
	require.NoError(t, err)
	refreshToken, err := jwtService.IssueRefreshToken(sessionID)
	require.NoError(t, err)

	_, err = jwtService.VerifyAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.VerifyRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.AccessTokenTTL = -time.Minute

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, err := jwtService.IssueAccessToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = jwtService.VerifyAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = jwtService.VerifyAccessToken("not.a.token")
	assert.Error(t, err)

	_, err = jwtService.VerifyRefreshToken("")
	assert.Error(t, err)
}

func TestNewJWTService_RejectsMissingOrSharedSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}
