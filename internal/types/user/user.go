package user

// CreateUser is the registration form.
type CreateUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Password string `json:"password"`
}

// ChangeUser carries the profile fields a user may edit.
type ChangeUser struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	AvatarURL string `json:"avatar_url"`
}
