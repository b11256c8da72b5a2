package stats

import (
	"context"

	"tuzona/internal/kafka"
	"tuzona/internal/user"
)

// StatsRepo persists the per-seller counters derived from events.
type StatsRepo interface {
	IncrementViews(ctx context.Context, adID, sellerID string) error
	RecountAds(ctx context.Context, sellerID string) error
	StatsFor(ctx context.Context, sellerID string) (*user.Stats, error)
}

// StatsService folds catalog events into the counters.
type StatsService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	StatsFor(ctx context.Context, sellerID string) (*user.Stats, error)
}
