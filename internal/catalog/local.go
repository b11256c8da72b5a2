package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"

	typesAd "tuzona/internal/types/ad"
	myErr "tuzona/internal/types/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	adKeyPrefix = "ad:"
	adIndexKey  = "ads"

	// Fresh fallback ads get a small random view count so the local demo
	// catalog does not look dead.
	seedViewsMax = 50
)

// LocalAdStore is the fallback AdSource: a same-device key-value store
// holding the same raw record shape the remote store round-trips.
type LocalAdStore struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
}

func NewLocalAdStore(redisClient *redis.Client, logger *zap.SugaredLogger) *LocalAdStore {
	return &LocalAdStore{
		RedisClient: redisClient,
		Logger:      logger,
	}
}

func (s *LocalAdStore) FetchAdsByOwner(ctx context.Context, ownerID string) ([]RawAd, error) {
	all, err := s.FetchAllAds(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]RawAd, 0, len(all))
	for _, raw := range all {
		if raw.Seller != nil && raw.Seller.ID == ownerID {
			result = append(result, raw)
		}
	}

	return result, nil
}

func (s *LocalAdStore) FetchAllAds(ctx context.Context) ([]RawAd, error) {
	ids, err := s.RedisClient.SMembers(ctx, adIndexKey).Result()
	if err != nil {
		s.Logger.Errorf("Failed to read ad index: %v", err)
		return nil, myErr.ErrSourceUnavailable
	}

	result := make([]RawAd, 0, len(ids))
	for _, id := range ids {
		raw, err := s.getAd(ctx, id)
		if err != nil {
			if errors.Is(err, myErr.ErrNotFound) {
				// index entry without a record, drop it
				s.RedisClient.SRem(ctx, adIndexKey, id) // nolint:errcheck
				continue
			}
			return nil, err
		}
		result = append(result, *raw)
	}

	return result, nil
}

func (s *LocalAdStore) CreateAd(ctx context.Context, raw RawAd) (string, error) {
	if raw.ID == "" {
		raw.ID = uuid.New().String()
	}
	if raw.Views == 0 {
		raw.Views = rand.Intn(seedViewsMax) // nolint:gosec
	}

	if err := s.saveAd(ctx, raw); err != nil {
		return "", err
	}

	if err := s.RedisClient.SAdd(ctx, adIndexKey, raw.ID).Err(); err != nil {
		s.Logger.Errorf("Failed to index ad %s: %v", raw.ID, err)
		return "", myErr.ErrSourceUnavailable
	}

	return raw.ID, nil
}

func (s *LocalAdStore) UpdateAd(ctx context.Context, id string, patch typesAd.UpdateAd) error {
	raw, err := s.getAd(ctx, id)
	if err != nil {
		return err
	}

	if patch.Title != "" {
		raw.Title = patch.Title
	}
	if patch.Description != "" {
		raw.Description = patch.Description
	}
	if patch.Price != nil {
		raw.Price = *patch.Price
	}
	if patch.Category != "" {
		raw.Category = patch.Category
	}
	if patch.Condition != "" {
		raw.Condition = patch.Condition
	}
	if patch.Location != "" {
		raw.Location = patch.Location
	}
	if patch.Images != nil {
		raw.Images = patch.Images
		raw.Image = ""
	}
	if patch.Status != "" {
		raw.Status = string(parseStatus(patch.Status))
	}

	return s.saveAd(ctx, *raw)
}

func (s *LocalAdStore) DeleteAd(ctx context.Context, id string) error {
	deleted, err := s.RedisClient.Del(ctx, adKeyPrefix+id).Result()
	if err != nil {
		s.Logger.Errorf("Failed to delete ad %s: %v", id, err)
		return myErr.ErrSourceUnavailable
	}
	if deleted == 0 {
		return myErr.ErrNotFound
	}

	if err := s.RedisClient.SRem(ctx, adIndexKey, id).Err(); err != nil {
		s.Logger.Errorf("Failed to unindex ad %s: %v", id, err)
		return myErr.ErrSourceUnavailable
	}

	return nil
}

func (s *LocalAdStore) saveAd(ctx context.Context, raw RawAd) error {
	data, err := json.Marshal(raw)
	if err != nil {
		s.Logger.Errorf("Failed to encode ad %s: %v", raw.ID, err)
		return err
	}

	if err := s.RedisClient.Set(ctx, adKeyPrefix+raw.ID, data, 0).Err(); err != nil {
		s.Logger.Errorf("Failed to save ad %s: %v", raw.ID, err)
		return myErr.ErrSourceUnavailable
	}

	return nil
}

func (s *LocalAdStore) getAd(ctx context.Context, id string) (*RawAd, error) {
	data, err := s.RedisClient.Get(ctx, adKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErr.ErrNotFound
		}

		s.Logger.Errorf("Failed to get ad %s: %v", id, err)
		return nil, myErr.ErrSourceUnavailable
	}

	var raw RawAd
	if err := json.Unmarshal(data, &raw); err != nil {
		s.Logger.Errorf("Failed to decode ad %s: %v", id, err)
		return nil, err
	}

	return &raw, nil
}
