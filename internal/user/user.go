package user

import (
	"time"

	types "tuzona/internal/types/user"
)

// User is the registered seller profile.
type User struct {
	ID               string    `json:"user_id"` // uuid
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Location         string    `json:"location"`
	AvatarURL        string    `json:"avatar_url"`
	RegistrationDate time.Time `json:"registration_date"`
	PasswordHash     string    `json:"-"`
}

// Stats holds counters derived from the user's ads, kept up to date by
// the stats consumer.
type Stats struct {
	TotalAds   int `json:"total_ads"`
	ActiveAds  int `json:"active_ads"`
	PendingAds int `json:"pending_ads"`
	TotalViews int `json:"total_views"`
}

//go:generate mockgen -source=user.go -destination=../mocks/mock_user_repo.go -package=mocks
type UserRepo interface {
	// CheckUser validates a user by email and password
	CheckUser(email, password string) (*User, error)
	// CreateUser registers a new user
	CreateUser(u types.CreateUser) (*User, error)
	// Info returns the profile for userID
	Info(userID string) (*User, error)
	// ChangeProfile applies updateUser to the profile of userID
	ChangeProfile(userID string, updateUser types.ChangeUser) (*User, error)
	// Stats returns the ad counters of userID
	Stats(userID string) (*Stats, error)
}
