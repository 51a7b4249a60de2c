package domain

import "time"

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User is an account holder. PasswordHash is empty for OAuth-only accounts;
// ProviderUserID is empty for local accounts.
type User struct {
	UserID                 string       `json:"userID"`
	Username               string       `json:"username"`
	Email                  string       `json:"email"`
	PasswordHash           string       `json:"-"`
	AuthProvider           AuthProvider `json:"authProvider"`
	ProviderUserID         string       `json:"-"`
	AvatarURL              string       `json:"avatarURL,omitempty"`
	RefreshTokenHash       string       `json:"-"`
	RefreshTokenExpiryTime *time.Time   `json:"-"`
	CreatedAt              time.Time    `json:"createdAt"`
	UpdatedAt              time.Time    `json:"updatedAt"`
}
