package service

import (
	"testing"
	"time"

	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func newAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Identity.DemoName = "Taylor"
	cfg.Identity.DemoEmail = "taylor@example.com"
	cfg.Identity.DemoPassword = "let-me-in"
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newAuthConfig())

	token, user, err := svc.Login("taylor@example.com", "let-me-in")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "Taylor", user.Name)
	require.Equal(t, "taylor@example.com", user.Email)

	claims, err := util.ParseJWT(token, "test-secret-test-secret-test-secret")
	require.NoError(t, err)
	require.Equal(t, "Taylor", claims.Name)
	require.Equal(t, "taylor@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newAuthConfig())

	_, _, err := svc.Login("taylor@example.com", "wrong")
	require.ErrorIs(t, err, util.ErrInvalidCredential)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newAuthConfig())

	_, _, err := svc.Login("nobody@example.com", "let-me-in")
	require.ErrorIs(t, err, util.ErrInvalidCredential)
}
