package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	myErr "tuzona/internal/types/errors"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

type SessionRepository struct {
	RedisClient  *redis.Client
	Logger       *zap.SugaredLogger
	tokenSecret  string
	baseDuration time.Duration
}

func NewSessionRepository(
	redisClient *redis.Client,
	logger *zap.SugaredLogger,
	tokenSecret string,
	baseDuration time.Duration,
) *SessionRepository {
	return &SessionRepository{
		RedisClient:  redisClient,
		Logger:       logger,
		tokenSecret:  tokenSecret,
		baseDuration: baseDuration,
	}
}

func (sr *SessionRepository) CreateSession(
	ctx context.Context,
	w http.ResponseWriter,
	userID string,
	email string,
) (*Session, error) {
	now := time.Now()

	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		StartTime: now,
		EndTime:   now.Add(sr.baseDuration),
	}

	if err := sr.save(ctx, sess); err != nil {
		return nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":      email,
		"id":         userID,
		"iat":        sess.StartTime.Unix(),
		"exp":        sess.EndTime.Unix(),
		"session_id": sess.ID,
	})

	tokenStr, err := token.SignedString([]byte(sr.tokenSecret))
	if err != nil {
		sr.Logger.Errorf("Failed to sign JWT token: %v", err)
		return nil, fmt.Errorf("error signing token: %w", err)
	}

	resp, err := json.Marshal(struct {
		Token string `json:"token"`
	}{Token: tokenStr})
	if err != nil {
		sr.Logger.Errorf("Failed to marshal token response: %v", err)
		return nil, fmt.Errorf("error marshaling response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		sr.Logger.Errorf("Failed to write token response: %v", err)
		return nil, fmt.Errorf("error writing response: %w", err)
	}

	sr.Logger.Infof("Session %s created for user %s", sess.ID, userID)

	return sess, nil
}

func (sr *SessionRepository) CheckSession(r *http.Request) (*Session, error) {
	const bearerPrefix = "Bearer "

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, myErr.ErrNoAuth
	}

	tokenStr := strings.TrimPrefix(authHeader, bearerPrefix)

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			sr.Logger.Warnf("Unexpected signing method: %v", token.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(sr.tokenSecret), nil
	})
	if err != nil || !token.Valid {
		sr.Logger.Warnf("Invalid JWT token: %v", err)
		return nil, myErr.ErrNoAuth
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, myErr.ErrNoAuth
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		sr.Logger.Warn("Missing session_id claim in JWT")
		return nil, myErr.ErrNoAuth
	}

	ctx := r.Context()
	sess, err := sr.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if time.Now().After(sess.EndTime) {
		sr.RedisClient.Del(ctx, sessionKeyPrefix+sessionID) // nolint:errcheck
		return nil, myErr.ErrSessionIsExpired
	}

	return sess, nil
}

func (sr *SessionRepository) ExtendSession(ctx context.Context, sessionID string) error {
	sess, err := sr.get(ctx, sessionID)
	if err != nil {
		return err
	}

	sess.EndTime = time.Now().Add(sr.baseDuration)

	return sr.save(ctx, sess)
}

func (sr *SessionRepository) save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		sr.Logger.Errorf("Failed to encode session %s: %v", sess.ID, err)
		return err
	}

	if err := sr.RedisClient.Set(ctx, sessionKeyPrefix+sess.ID, data, sr.baseDuration).Err(); err != nil {
		sr.Logger.Errorf("Failed to save session %s: %v", sess.ID, err)
		return err
	}

	return nil
}

func (sr *SessionRepository) get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := sr.RedisClient.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErr.ErrSessionNotFound
		}

		sr.Logger.Errorf("Failed to get session %s: %v", sessionID, err)
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		sr.Logger.Errorf("Failed to decode session %s: %v", sessionID, err)
		return nil, err
	}

	return &sess, nil
}
