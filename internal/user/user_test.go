package user

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	myErr "tuzona/internal/types/errors"
	types "tuzona/internal/types/user"
)

func setup(t *testing.T) (*UserDBRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserDBRepository(db, zaptest.NewLogger(t).Sugar())

	return repo, mock, func() { db.Close() }
}

func userColumns() []string {
	return []string{"user_id", "name", "email", "phone", "location", "avatar_url", "registration_date", "password_hash"}
}

func TestUserDBRepository_CheckUser(t *testing.T) {
	repo, mock, cleanup := setup(t)
	defer cleanup()

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost) // nolint:errcheck
	registered := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		email       string
		password    string
		mock        func()
		expectError error
	}{
		{
			name:     "success",
			email:    "juan@ejemplo.com",
			password: "correct_password",
			mock: func() {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
					WithArgs("juan@ejemplo.com").
					WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(
						"u1", "Juan Pérez", "juan@ejemplo.com", "+57 300 123 4567",
						"Medellín, Antioquia", nil, registered, string(hashedPassword),
					))
			},
			expectError: nil,
		},
		{
			name:     "wrong password",
			email:    "juan@ejemplo.com",
			password: "wrong",
			mock: func() {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
					WithArgs("juan@ejemplo.com").
					WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(
						"u1", "Juan Pérez", "juan@ejemplo.com", "+57 300 123 4567",
						"Medellín, Antioquia", nil, registered, string(hashedPassword),
					))
			},
			expectError: myErr.ErrBadPassword,
		},
		{
			name:     "unknown email",
			email:    "nadie@ejemplo.com",
			password: "whatever",
			mock: func() {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
					WithArgs("nadie@ejemplo.com").
					WillReturnError(sql.ErrNoRows)
			},
			expectError: myErr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			u, err := repo.CheckUser(tt.email, tt.password)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, u)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u1", u.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserDBRepository_CreateUser(t *testing.T) {
	repo, mock, cleanup := setup(t)
	defer cleanup()

	form := types.CreateUser{
		Name:     "Juan Pérez",
		Email:    "juan@ejemplo.com",
		Phone:    "+57 300 123 4567",
		Location: "Medellín, Antioquia",
		Password: "secreto123",
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs(form.Email).
			WillReturnError(sql.ErrNoRows)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "phone", "location", "registration_date"}).
				AddRow("u1", form.Name, form.Email, form.Phone, form.Location, time.Now()))

		created, err := repo.CreateUser(form)
		require.NoError(t, err)
		assert.Equal(t, "u1", created.ID)
		assert.Equal(t, form.Email, created.Email)
	})

	t.Run("email already registered", func(t *testing.T) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost) // nolint:errcheck

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs(form.Email).
			WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(
				"u1", form.Name, form.Email, form.Phone, form.Location, nil, time.Now(), string(hash),
			))

		_, err := repo.CreateUser(form)
		assert.ErrorIs(t, err, myErr.ErrAlreadyExists)
	})
}

func TestUserDBRepository_ChangeProfile(t *testing.T) {
	repo, mock, cleanup := setup(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET phone = $1 WHERE user_id = $2")).
		WithArgs("+57 301 000 0000", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "phone", "location", "avatar_url", "registration_date"}).
			AddRow("u1", "Juan Pérez", "juan@ejemplo.com", "+57 301 000 0000", "Medellín", nil, time.Now()))

	u, err := repo.ChangeProfile("u1", types.ChangeUser{Phone: "+57 301 000 0000"})
	require.NoError(t, err)
	assert.Equal(t, "+57 301 000 0000", u.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDBRepository_ChangeProfileNotFound(t *testing.T) {
	repo, mock, cleanup := setup(t)
	defer cleanup()

	mock.ExpectExec("UPDATE users SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.ChangeProfile("missing", types.ChangeUser{Name: "X"})
	assert.ErrorIs(t, err, myErr.ErrNotFound)
}

func TestUserDBRepository_Stats(t *testing.T) {
	repo, mock, cleanup := setup(t)
	defer cleanup()

	t.Run("existing counters", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_stats WHERE user_id = \\$1").
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"total_ads", "active_ads", "pending_ads", "total_views"}).
				AddRow(4, 3, 1, 1245))

		s, err := repo.Stats("u1")
		require.NoError(t, err)
		assert.Equal(t, &Stats{TotalAds: 4, ActiveAds: 3, PendingAds: 1, TotalViews: 1245}, s)
	})

	t.Run("no row yet means zero counters", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_stats WHERE user_id = \\$1").
			WithArgs("u2").
			WillReturnError(sql.ErrNoRows)

		s, err := repo.Stats("u2")
		require.NoError(t, err)
		assert.Equal(t, &Stats{}, s)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_stats WHERE user_id = \\$1").
			WithArgs("u3").
			WillReturnError(errors.New("db down"))

		_, err := repo.Stats("u3")
		assert.ErrorIs(t, err, myErr.ErrDBInternal)
	})
}
