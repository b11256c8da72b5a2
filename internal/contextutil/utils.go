package contextutil

import (
	"context"

	"tuzona/internal/middleware"
)

// GetUserIDFromContext extracts the authenticated user id put there by
// the auth middleware.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return "", false
	}
	return sess.UserID, true
}
