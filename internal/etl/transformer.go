package etl

import (
	"tuzona/internal/catalog"
	"tuzona/internal/types/search"

	"go.uber.org/zap"
)

type Transformer struct {
	Logger *zap.SugaredLogger
}

func NewTransformer(logger *zap.SugaredLogger) *Transformer {
	return &Transformer{
		Logger: logger,
	}
}

// Transform converts ads from their storage shape into documents for
// the full-text index.
func (t *Transformer) Transform(input []catalog.Ad) []search.AdDoc {
	docs := make([]search.AdDoc, 0, len(input))
	for _, a := range input {
		docs = append(docs, search.AdDoc{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Category:    a.Category,
			Location:    a.Location,
		})
	}

	t.Logger.Infof("Transformed %d docs succesfully", len(input))

	return docs
}
