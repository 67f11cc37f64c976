package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories"
	"fibertrack/pkg/config"
	apperrors "fibertrack/pkg/errors"
	"fibertrack/pkg/service"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, data dto.RegisterDTO) (*entities.User, error)
	Login(ctx context.Context, data dto.LoginDTO) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Me(ctx context.Context, userID int64) (*entities.User, error)
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	cfg        config.AuthConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	cfg config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		cfg:        cfg,
		logger:     logger,
	}
}

func loginAttemptsKey(username string) string { return "login_attempts:" + username }
func revokedTokenKey(jti string) string       { return "revoked_token:" + jti }

func (s *AuthService) Register(ctx context.Context, data dto.RegisterDTO) (*entities.User, error) {
	if _, err := s.userRepo.FindByUsername(ctx, data.Username); err == nil {
		return nil, apperrors.NewBadRequestError("username already taken")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := data.Role
	if role == "" {
		role = "staff"
	}

	return s.userRepo.Create(ctx, entities.User{
		Username: data.Username,
		Password: string(hash),
		Name:     data.Name,
		Role:     role,
		Email:    data.Email,
	})
}

func (s *AuthService) Login(ctx context.Context, data dto.LoginDTO) (*dto.TokenPairDTO, error) {
	key := loginAttemptsKey(data.Username)

	if raw, err := s.cacheRepo.Get(ctx, key); err == nil {
		if attempts, convErr := strconv.Atoi(raw); convErr == nil && attempts >= s.cfg.MaxLoginAttempts {
			return nil, apperrors.ErrTooManyAttempts
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, data.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, s.recordFailedLogin(ctx, key, data.Username)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		return nil, s.recordFailedLogin(ctx, key, data.Username)
	}

	if err := s.cacheRepo.Delete(ctx, key); err != nil {
		s.logger.Warn("resetting login attempts failed", zap.String("username", data.Username), zap.Error(err))
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing tokens: %w", err)
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) recordFailedLogin(ctx context.Context, key, username string) error {
	attempts, err := s.cacheRepo.Increment(ctx, key, s.cfg.LockoutDuration)
	if err != nil {
		s.logger.Warn("recording failed login attempt failed", zap.String("username", username), zap.Error(err))
		return apperrors.ErrInvalidCredentials
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		return apperrors.ErrTooManyAttempts
	}
	return apperrors.ErrInvalidCredentials
}

// Logout revokes the presented access token for the remainder of its
// lifetime.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtService.ValidateToken(accessToken)
	if err != nil {
		return err
	}
	if claims.IsRefreshToken {
		return apperrors.ErrTokenIsNotAccess
	}
	return s.revoke(ctx, claims)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	revoked, err := s.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	// Old refresh token is single use.
	if err := s.revoke(ctx, claims); err != nil {
		return nil, err
	}

	access, refresh, err := s.jwtService.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("issuing tokens: %w", err)
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.cacheRepo.Exists(ctx, revokedTokenKey(jti))
}

func (s *AuthService) revoke(ctx context.Context, claims *service.JwtCustomClaim) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.cacheRepo.Set(ctx, revokedTokenKey(claims.ID), "1", ttl)
}
