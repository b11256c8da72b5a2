package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	typesAd "tuzona/internal/types/ad"
	myErr "tuzona/internal/types/errors"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresAdStore is the remote document-store implementation of AdSource.
type PostgresAdStore struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresAdStore(db *sql.DB, l *zap.SugaredLogger) *PostgresAdStore {
	return &PostgresAdStore{
		DB:     db,
		Logger: l,
	}
}

const adColumns = `
	id, title, description, price, category, condition, location, images,
	status, views, featured, seller_id, seller_name, seller_phone, seller_email, created_at
`

func (s *PostgresAdStore) FetchAdsByOwner(ctx context.Context, ownerID string) ([]RawAd, error) {
	query := `
	SELECT ` + adColumns + `
	FROM ads
	WHERE seller_id = $1
	`

	rows, err := s.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		s.Logger.Errorf("Error fetching ads for owner %s: %v", ownerID, err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	return s.scanAds(rows)
}

func (s *PostgresAdStore) FetchAllAds(ctx context.Context) ([]RawAd, error) {
	query := `
	SELECT ` + adColumns + `
	FROM ads
	ORDER BY created_at DESC NULLS LAST
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		s.Logger.Errorf("Error fetching ads: %v", err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	return s.scanAds(rows)
}

func (s *PostgresAdStore) CreateAd(ctx context.Context, raw RawAd) (string, error) {
	a := Normalize(raw)

	query := `
	INSERT INTO ads (
		title, description, price, category, condition, location, images,
		status, views, featured, seller_id, seller_name, seller_phone, seller_email, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING id
	`

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var id string
	err := s.DB.QueryRowContext(
		ctx,
		query,
		a.Title,
		a.Description,
		a.Price,
		a.Category,
		a.Condition,
		a.Location,
		pq.Array(a.Images),
		string(a.Status),
		a.Views,
		a.Featured,
		a.Seller.ID,
		a.Seller.Name,
		a.Seller.Phone,
		a.Seller.Email,
		createdAt,
	).Scan(&id)

	if err != nil {
		s.Logger.Errorf("Error creating ad: %v", err)
		return "", myErr.ErrDBInternal
	}

	return id, nil
}

func (s *PostgresAdStore) UpdateAd(ctx context.Context, id string, patch typesAd.UpdateAd) error {
	fields := []string{}
	args := []interface{}{}
	argID := 1

	if patch.Title != "" {
		fields = append(fields, "title = $"+strconv.Itoa(argID))
		args = append(args, patch.Title)
		argID++
	}
	if patch.Description != "" {
		fields = append(fields, "description = $"+strconv.Itoa(argID))
		args = append(args, patch.Description)
		argID++
	}
	if patch.Price != nil {
		fields = append(fields, "price = $"+strconv.Itoa(argID))
		args = append(args, *patch.Price)
		argID++
	}
	if patch.Category != "" {
		fields = append(fields, "category = $"+strconv.Itoa(argID))
		args = append(args, patch.Category)
		argID++
	}
	if patch.Condition != "" {
		fields = append(fields, "condition = $"+strconv.Itoa(argID))
		args = append(args, patch.Condition)
		argID++
	}
	if patch.Location != "" {
		fields = append(fields, "location = $"+strconv.Itoa(argID))
		args = append(args, patch.Location)
		argID++
	}
	if patch.Images != nil {
		fields = append(fields, "images = $"+strconv.Itoa(argID))
		args = append(args, pq.Array(patch.Images))
		argID++
	}
	if patch.Status != "" {
		fields = append(fields, "status = $"+strconv.Itoa(argID))
		args = append(args, string(parseStatus(patch.Status)))
		argID++
	}

	if len(fields) == 0 {
		return nil
	}

	query := "UPDATE ads SET " + strings.Join(fields, ", ") + " WHERE id = $" + strconv.Itoa(argID) // nolint:gosec
	args = append(args, id)

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		s.Logger.Errorf("Error updating ad %s: %v", id, err)
		return myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return myErr.ErrDBInternal
	}
	if rowsAffected == 0 {
		return myErr.ErrNotFound
	}

	return nil
}

func (s *PostgresAdStore) DeleteAd(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM ads WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return myErr.ErrNotFound
		}

		s.Logger.Errorf("Error deleting ad %s: %v", id, err)
		return myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return myErr.ErrDBInternal
	}
	if rowsAffected == 0 {
		return myErr.ErrNotFound
	}

	return nil
}

func (s *PostgresAdStore) scanAds(rows *sql.Rows) ([]RawAd, error) {
	var result []RawAd

	for rows.Next() {
		var (
			raw         RawAd
			description sql.NullString
			condition   sql.NullString
			location    sql.NullString
			images      []string
			price       int64
			createdAt   sql.NullTime
			seller      Seller
			sellerEmail sql.NullString
		)

		err := rows.Scan(
			&raw.ID,
			&raw.Title,
			&description,
			&price,
			&raw.Category,
			&condition,
			&location,
			pq.Array(&images),
			&raw.Status,
			&raw.Views,
			&raw.Featured,
			&seller.ID,
			&seller.Name,
			&seller.Phone,
			&sellerEmail,
			&createdAt,
		)
		if err != nil {
			s.Logger.Errorf("Error scanning ad row: %v", err)
			return nil, myErr.ErrDBInternal
		}

		raw.Description = description.String
		raw.Condition = condition.String
		raw.Location = location.String
		raw.Images = images
		raw.Price = price
		seller.Email = sellerEmail.String
		raw.Seller = &seller
		if createdAt.Valid {
			raw.CreatedAt = createdAt.Time.UTC().Format(time.RFC3339)
		}

		result = append(result, raw)
	}

	if err := rows.Err(); err != nil {
		s.Logger.Errorf("Error during rows iteration: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return result, nil
}
