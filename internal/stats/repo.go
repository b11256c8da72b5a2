package stats

import (
	"context"
	"database/sql"
	"errors"

	"tuzona/internal/user"

	"go.uber.org/zap"
)

type Repository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewRepository(db *sql.DB, logger *zap.SugaredLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// IncrementViews bumps the view counter on the ad row and on the
// seller's aggregate.
func (r *Repository) IncrementViews(ctx context.Context, adID, sellerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE ads SET views = views + 1 WHERE id = $1
	`, adID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_stats (user_id, total_views)
		VALUES ($1, 1)
		ON CONFLICT (user_id)
		DO UPDATE SET total_views = user_stats.total_views + 1
	`, sellerID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// RecountAds recomputes the seller's ad counters from the ads table.
// Publishing and deleting both land here, so the counters cannot drift.
func (r *Repository) RecountAds(ctx context.Context, sellerID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_stats (user_id, total_ads, active_ads, pending_ads)
		SELECT $1,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'active'),
		       COUNT(*) FILTER (WHERE status = 'pending')
		FROM ads
		WHERE seller_id = $1
		ON CONFLICT (user_id)
		DO UPDATE SET total_ads   = EXCLUDED.total_ads,
		              active_ads  = EXCLUDED.active_ads,
		              pending_ads = EXCLUDED.pending_ads
	`, sellerID)

	return err
}

func (r *Repository) StatsFor(ctx context.Context, sellerID string) (*user.Stats, error) {
	var s user.Stats

	err := r.db.QueryRowContext(ctx, `
		SELECT total_ads, active_ads, pending_ads, total_views
		FROM user_stats
		WHERE user_id = $1
	`, sellerID).Scan(&s.TotalAds, &s.ActiveAds, &s.PendingAds, &s.TotalViews)
	if errors.Is(err, sql.ErrNoRows) {
		return &user.Stats{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}
