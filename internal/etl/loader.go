package etl

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	searchService "tuzona/internal/search"
	myErr "tuzona/internal/types/errors"
	esDoc "tuzona/internal/types/search"

	"go.uber.org/zap"
)

type ElasticLoader struct {
	Service *searchService.ElasticService
	Logger  *zap.SugaredLogger
	DB      *sql.DB
}

func NewElasticLoader(service *searchService.ElasticService, logger *zap.SugaredLogger, db *sql.DB) *ElasticLoader {
	return &ElasticLoader{
		Service: service,
		Logger:  logger,
		DB:      db,
	}
}

// Load bulk-indexes the prepared documents and marks the matching rows
// as indexed so the next iteration skips them.
func (l *ElasticLoader) Load(ctx context.Context, docs []esDoc.AdDoc) error {
	if len(docs) == 0 {
		l.Logger.Infow("No documents to load")
		return nil
	}

	l.Logger.Infow("Loading documents to Elasticsearch", "count", len(docs))
	err := l.Service.BulkIndex(ctx, docs)
	if err != nil {
		l.Logger.Errorw("Failed to bulk index documents", zap.Error(err))
		return err
	}

	l.Logger.Infow("Successfully indexed documents", "count", len(docs))

	ids := make([]interface{}, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}

	placeholders := make([]string, len(ids))
	for i := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"UPDATE ads SET indexed = TRUE WHERE id IN (%s)",
		strings.Join(placeholders, ", "),
	)

	_, err = l.DB.ExecContext(ctx, query, ids...)
	if err != nil {
		l.Logger.Errorw("Failed to update documents in PostgreSQL", zap.Error(err))
		return myErr.ErrDBInternal
	}

	return nil
}
