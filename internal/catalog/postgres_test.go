package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	typesAd "tuzona/internal/types/ad"
	myErr "tuzona/internal/types/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setupPostgres(t *testing.T) (*PostgresAdStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	store := NewPostgresAdStore(db, zaptest.NewLogger(t).Sugar())

	return store, mock, func() { db.Close() }
}

func adRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "price", "category", "condition", "location", "images",
		"status", "views", "featured", "seller_id", "seller_name", "seller_phone", "seller_email", "created_at",
	})
}

func TestPostgresFetchAdsByOwner(t *testing.T) {
	store, mock, cleanup := setupPostgres(t)
	defer cleanup()

	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM ads WHERE seller_id = \\$1").
		WithArgs("u1").
		WillReturnRows(adRows().AddRow(
			"a1", "iPhone 13", "Como nuevo", int64(3500000), "Celulares", "Usado",
			"Bogotá, Chapinero", "{https://img.example/1.jpg}",
			"active", 12, false, "u1", "Juan", "+57 300 123 4567", "juan@ejemplo.com", createdAt,
		))

	raws, err := store.FetchAdsByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, raws, 1)

	a := Normalize(raws[0])
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, int64(3500000), a.Price)
	assert.Equal(t, []string{"https://img.example/1.jpg"}, a.Images)
	assert.Equal(t, createdAt, a.CreatedAt)
	assert.Equal(t, Seller{ID: "u1", Name: "Juan", Phone: "+57 300 123 4567", Email: "juan@ejemplo.com"}, a.Seller)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFetchAllAdsDBError(t *testing.T) {
	store, mock, cleanup := setupPostgres(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM ads").
		WillReturnError(errors.New("connection refused"))

	_, err := store.FetchAllAds(context.Background())
	assert.ErrorIs(t, err, myErr.ErrDBInternal)
}

func TestPostgresCreateAd(t *testing.T) {
	store, mock, cleanup := setupPostgres(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ads")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("new-id"))

	id, err := store.CreateAd(context.Background(), RawAd{
		Title:    "Sofá gris",
		Price:    int64(950000),
		Category: "Hogar",
		Seller:   &Seller{ID: "u1", Name: "Juan", Phone: "300"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateAd(t *testing.T) {
	store, mock, cleanup := setupPostgres(t)
	defer cleanup()

	price := int64(1500000)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ads SET price = $1, status = $2 WHERE id = $3")).
		WithArgs(price, "inactive", "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateAd(context.Background(), "a1", typesAd.UpdateAd{
		Price:  &price,
		Status: "inactive",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateAdNotFound(t *testing.T) {
	store, mock, cleanup := setupPostgres(t)
	defer cleanup()

	mock.ExpectExec("UPDATE ads SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateAd(context.Background(), "missing", typesAd.UpdateAd{Title: "x"})
	assert.ErrorIs(t, err, myErr.ErrNotFound)
}

func TestPostgresDeleteAd(t *testing.T) {
	store, mock, cleanup := setupPostgres(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ads WHERE id = $1")).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.DeleteAd(context.Background(), "a1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ads WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, store.DeleteAd(context.Background(), "missing"), myErr.ErrNotFound)
}
