package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/repositories/memory"
	"fibertrack/pkg/config"
	apperrors "fibertrack/pkg/errors"
	"fibertrack/pkg/service"
)

func newAuthService(t *testing.T) AuthServiceInterface {
	t.Helper()
	store := memory.NewStore()
	jwtService := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	cfg := config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute}
	return NewAuthService(store.Users(), memory.NewCache(), jwtService, cfg, zap.NewNop())
}

func registerInput() dto.RegisterDTO {
	return dto.RegisterDTO{
		Username: "jsmith",
		Password: "correct-horse",
		Name:     "John Smith",
		Role:     "admin",
		Email:    "john@isp.example",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.Equal(t, "jsmith", user.Username)
	assert.NotEqual(t, "correct-horse", user.Password)

	tokens, err := svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput())
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrTooManyAttempts)

	// Even the right password is rejected while locked out.
	_, err = svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrTooManyAttempts)
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	tokens, err := svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.AccessToken))

	jwtService := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)

	revoked, err := svc.IsTokenRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRefreshIsSingleUse(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	tokens, err := svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "correct-horse"})
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	tokens, err := svc.Login(ctx, dto.LoginDTO{Username: "jsmith", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}
