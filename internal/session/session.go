package session

import (
	"context"
	"net/http"
	"time"
)

// Session is one authenticated login, stored in Redis.
type Session struct {
	ID        string
	UserID    string
	StartTime time.Time
	EndTime   time.Time
}

//go:generate mockgen -source=session.go -destination=../mocks/mock_session_repo.go -package=mocks
type SessionRepo interface {
	// CreateSession creates a session for userID, stores it in Redis and
	// writes the signed JWT back to the client.
	CreateSession(ctx context.Context, w http.ResponseWriter, userID string, email string) (*Session, error)
	// CheckSession validates the bearer token on r and returns the live
	// session, or an auth error.
	CheckSession(r *http.Request) (*Session, error)
	// ExtendSession pushes the session end time forward for active users.
	ExtendSession(ctx context.Context, sessionID string) error
}
