package etl

import (
	"database/sql"

	"tuzona/internal/catalog"

	"go.uber.org/zap"
	"golang.org/x/net/context"
)

type PostgresExtractor struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresExtractor(db *sql.DB, logger *zap.SugaredLogger) *PostgresExtractor {
	return &PostgresExtractor{
		DB:     db,
		Logger: logger,
	}
}

// ExtractNew returns the active ads that have not been pushed to the
// full-text index yet.
func (e *PostgresExtractor) ExtractNew(ctx context.Context) ([]catalog.Ad, error) {
	query :=
		`
		SELECT id, title, description, category, location
		FROM ads
		WHERE indexed = FALSE AND status = 'active'
		`

	rows, err := e.DB.QueryContext(ctx, query)
	if err != nil {
		e.Logger.Error("Failed to executing query", zap.Error(err))

		return nil, err
	}
	defer rows.Close()

	var result []catalog.Ad

	for rows.Next() {
		var a catalog.Ad
		err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Category, &a.Location)
		if err != nil {
			e.Logger.Error("Failed to scan rows", zap.Error(err))

			return nil, err
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		e.Logger.Error("Error during rows iteration", zap.Error(err))
		return nil, err
	}

	return result, nil
}
