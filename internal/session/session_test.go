package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	myErr "tuzona/internal/types/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setup(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSessionRepository(client, zaptest.NewLogger(t).Sugar(), "test-secret", time.Hour), mr
}

func createSession(t *testing.T, repo *SessionRepository) (string, *Session) {
	t.Helper()

	w := httptest.NewRecorder()
	sess, err := repo.CreateSession(context.Background(), w, "u1", "juan@ejemplo.com")
	require.NoError(t, err)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token, sess
}

func TestSessionRoundTrip(t *testing.T) {
	repo, _ := setup(t)

	token, created := createSession(t, repo)

	r := httptest.NewRequest(http.MethodGet, "/api/ads/my", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	sess, err := repo.CheckSession(r)
	require.NoError(t, err)
	assert.Equal(t, created.ID, sess.ID)
	assert.Equal(t, "u1", sess.UserID)
}

func TestCheckSessionNoAuth(t *testing.T) {
	repo, _ := setup(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := repo.CheckSession(r)
	assert.ErrorIs(t, err, myErr.ErrNoAuth)

	r.Header.Set("Authorization", "Bearer not-a-jwt")
	_, err = repo.CheckSession(r)
	assert.ErrorIs(t, err, myErr.ErrNoAuth)
}

func TestCheckSessionGone(t *testing.T) {
	repo, mr := setup(t)

	token, created := createSession(t, repo)
	mr.Del(sessionKeyPrefix + created.ID)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err := repo.CheckSession(r)
	assert.ErrorIs(t, err, myErr.ErrSessionNotFound)
}

func TestExtendSession(t *testing.T) {
	repo, _ := setup(t)

	_, created := createSession(t, repo)
	before := created.EndTime

	require.NoError(t, repo.ExtendSession(context.Background(), created.ID))

	extended, err := repo.get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, extended.EndTime.Before(before))

	assert.ErrorIs(t, repo.ExtendSession(context.Background(), "missing"), myErr.ErrSessionNotFound)
}
