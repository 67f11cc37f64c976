package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fibertrack/pkg/contextkeys"
	apperrors "fibertrack/pkg/errors"
	"fibertrack/pkg/service"
	"fibertrack/pkg/utils"
)

// RevocationChecker reports whether a token id has been revoked.
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer access token and puts the user id into the
// request context.
func Auth(jwtService service.JWTService, revocations RevocationChecker, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.BearerToken(c)
			if err != nil {
				return utils.ErrorResponse(c, err, logger)
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return utils.ErrorResponse(c, err, logger)
			}
			if claims.IsRefreshToken {
				return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, logger)
			}

			revoked, err := revocations.IsTokenRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return utils.ErrorResponse(c, err, logger)
			}
			if revoked {
				return utils.ErrorResponse(c, apperrors.ErrTokenRevoked, logger)
			}

			ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, claims.UserID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
