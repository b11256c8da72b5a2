package stats

import (
	"context"

	"tuzona/internal/kafka"
	"tuzona/internal/user"

	"go.uber.org/zap"
)

type Service struct {
	repo   StatsRepo
	logger *zap.SugaredLogger
}

func NewService(repo StatsRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	switch event.Type {
	case kafka.View:
		if event.AdID == "" || event.SellerID == "" {
			return nil
		}
		return s.repo.IncrementViews(ctx, event.AdID, event.SellerID)
	case kafka.Publish, kafka.Delete:
		if event.SellerID == "" {
			return nil
		}
		return s.repo.RecountAds(ctx, event.SellerID)
	default:
		// searches carry nothing to count on the seller side
		return nil
	}
}

func (s *Service) StatsFor(ctx context.Context, sellerID string) (*user.Stats, error) {
	return s.repo.StatsFor(ctx, sellerID)
}
