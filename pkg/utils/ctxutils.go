package utils

import (
	"context"

	apperrors "fibertrack/pkg/errors"
	"fibertrack/pkg/contextkeys"
)

// GetUserIDFromCtx returns the authenticated user id placed into the request
// context by the auth middleware.
func GetUserIDFromCtx(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(int64)
	if !ok || id == 0 {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}
