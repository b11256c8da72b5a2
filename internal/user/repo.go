package user

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	myErr "tuzona/internal/types/errors"
	types "tuzona/internal/types/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewUserDBRepository(db *sql.DB, l *zap.SugaredLogger) *UserDBRepository {
	return &UserDBRepository{
		DB:     db,
		Logger: l,
	}
}

func (ur *UserDBRepository) CheckUser(email, password string) (*User, error) {
	query := `
	SELECT user_id, name, email, phone, location, avatar_url, registration_date, password_hash
	FROM users
	WHERE email = $1
	`

	u := &User{}
	var avatar sql.NullString

	err := ur.DB.QueryRow(query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Location,
		&avatar, &u.RegistrationDate, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		ur.Logger.Warnf("Error looking up user by email: %v", err)
		return nil, myErr.ErrDBInternal
	}
	u.AvatarURL = avatar.String

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, myErr.ErrBadPassword
	}

	return u, nil
}

func (ur *UserDBRepository) CreateUser(form types.CreateUser) (*User, error) {
	// reject duplicate emails up front
	_, err := ur.CheckUser(form.Email, form.Password)
	if err == nil || errors.Is(err, myErr.ErrBadPassword) {
		return nil, myErr.ErrAlreadyExists
	}
	if !errors.Is(err, myErr.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		ur.Logger.Errorf("Error hashing password: %v", err)
		return nil, err
	}

	query := `
	INSERT INTO users (user_id, name, email, phone, location, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING user_id, name, email, phone, location, registration_date
	`

	u := &User{}
	err = ur.DB.QueryRow(
		query,
		uuid.New().String(),
		form.Name,
		form.Email,
		form.Phone,
		form.Location,
		string(hash),
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Location, &u.RegistrationDate)

	if err != nil {
		ur.Logger.Errorf("Error creating user: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return u, nil
}

func (ur *UserDBRepository) Info(userID string) (*User, error) {
	query := `
	SELECT user_id, name, email, phone, location, avatar_url, registration_date
	FROM users
	WHERE user_id = $1
	`

	u := &User{}
	var avatar sql.NullString

	err := ur.DB.QueryRow(query, userID).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Location, &avatar, &u.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		ur.Logger.Warnf("Error fetching user info: %v", err)
		return nil, myErr.ErrDBInternal
	}
	u.AvatarURL = avatar.String

	return u, nil
}

func (ur *UserDBRepository) ChangeProfile(userID string, updateUser types.ChangeUser) (*User, error) {
	fields := []string{}
	args := []interface{}{}
	argID := 1

	if updateUser.Name != "" {
		fields = append(fields, "name = $"+strconv.Itoa(argID))
		args = append(args, updateUser.Name)
		argID++
	}
	if updateUser.Phone != "" {
		fields = append(fields, "phone = $"+strconv.Itoa(argID))
		args = append(args, updateUser.Phone)
		argID++
	}
	if updateUser.Location != "" {
		fields = append(fields, "location = $"+strconv.Itoa(argID))
		args = append(args, updateUser.Location)
		argID++
	}
	if updateUser.AvatarURL != "" {
		fields = append(fields, "avatar_url = $"+strconv.Itoa(argID))
		args = append(args, updateUser.AvatarURL)
		argID++
	}

	if len(fields) == 0 {
		return ur.Info(userID)
	}

	query := "UPDATE users SET " + strings.Join(fields, ", ") + " WHERE user_id = $" + strconv.Itoa(argID) // nolint:gosec
	args = append(args, userID)

	res, err := ur.DB.Exec(query, args...)
	if err != nil {
		ur.Logger.Warnf("Error updating profile: %v", err)
		return nil, myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return nil, myErr.ErrDBInternal
	}
	if rowsAffected == 0 {
		return nil, myErr.ErrNotFound
	}

	return ur.Info(userID)
}

func (ur *UserDBRepository) Stats(userID string) (*Stats, error) {
	query := `
	SELECT total_ads, active_ads, pending_ads, total_views
	FROM user_stats
	WHERE user_id = $1
	`

	s := &Stats{}
	err := ur.DB.QueryRow(query, userID).Scan(
		&s.TotalAds, &s.ActiveAds, &s.PendingAds, &s.TotalViews,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// user has no stats row yet, all counters are zero
			return s, nil
		}
		ur.Logger.Warnf("Error fetching user stats: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return s, nil
}
