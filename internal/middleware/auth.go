package middleware

import (
	"context"
	"net/http"

	"tuzona/internal/session"
	myErr "tuzona/internal/types/errors"

	"go.uber.org/zap"
)

type sessKey string

var sessionCtxKey sessKey = "sessionKey"

// Auth rejects requests without a live session and puts the session into
// the request context for handlers downstream.
func Auth(sm session.SessionRepo, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sm.CheckSession(r)
			if err != nil {
				myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, logger)
				return
			}

			ctx := ContextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ContextWithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(*session.Session)
	return s, ok
}
