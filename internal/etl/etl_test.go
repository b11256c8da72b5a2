package etl_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"tuzona/internal/catalog"
	"tuzona/internal/etl"
	"tuzona/internal/types/search"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
)

func TestPostgresExtractor_ExtractNew(t *testing.T) {
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name          string
		mockQuery     func(mock sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success with two rows",
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "category", "location"}).
					AddRow("id1", "iPhone 13 usado", "Buen estado", "Tecnología", "Bogotá, Colombia").
					AddRow("id2", "Sofá gris", "Tres puestos", "Hogar", "Cali, Colombia")
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, title, description, category, location
					FROM ads
					WHERE indexed = FALSE AND status = 'active'
				`)).WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "query error",
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, title, description, category, location
					FROM ads
					WHERE indexed = FALSE AND status = 'active'
				`)).WillReturnError(errors.New("query failed"))
			},
			expectedError: true,
		},
		{
			name: "no pending rows",
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "category", "location"})
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, title, description, category, location
					FROM ads
					WHERE indexed = FALSE AND status = 'active'
				`)).WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to open sqlmock: %v", err)
			}
			defer db.Close()

			tt.mockQuery(mock)

			extractor := etl.NewPostgresExtractor(db, logger)
			ctx := context.Background()

			results, err := extractor.ExtractNew(ctx)

			if tt.expectedError && err == nil {
				t.Errorf("expected error but got none")
			}
			if !tt.expectedError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(results) != tt.expectedCount {
				t.Errorf("expected %d results, got %d", tt.expectedCount, len(results))
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestTransformer_Transform(t *testing.T) {
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name   string
		input  []catalog.Ad
		expect []search.AdDoc
	}{
		{
			name:   "empty input",
			input:  []catalog.Ad{},
			expect: []search.AdDoc{},
		},
		{
			name: "single ad",
			input: []catalog.Ad{
				{
					ID:          "1",
					Title:       "iPhone 13 usado",
					Description: "Buen estado",
					Category:    "Tecnología",
					Location:    "Bogotá, Colombia",
				},
			},
			expect: []search.AdDoc{
				{
					ID:          "1",
					Title:       "iPhone 13 usado",
					Description: "Buen estado",
					Category:    "Tecnología",
					Location:    "Bogotá, Colombia",
				},
			},
		},
		{
			name: "multiple ads",
			input: []catalog.Ad{
				{ID: "1", Title: "A1", Description: "D1", Category: "C1"},
				{ID: "2", Title: "A2", Description: "D2", Category: "C2"},
			},
			expect: []search.AdDoc{
				{ID: "1", Title: "A1", Description: "D1", Category: "C1"},
				{ID: "2", Title: "A2", Description: "D2", Category: "C2"},
			},
		},
	}

	transformer := etl.NewTransformer(logger)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transformer.Transform(tt.input)
			if len(got) != len(tt.expect) {
				t.Fatalf("expected %d results, got %d", len(tt.expect), len(got))
			}

			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("expected %v, got %v", tt.expect[i], got[i])
				}
			}
		})
	}
}
