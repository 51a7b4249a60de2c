package dto

import (
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
)

// CreateUserRequest defines the payload for local registration.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the payload for local login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest defines the payload for rotating a refresh token.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required,uuid"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse is the public shape of a user account.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"authProvider"`
	AvatarURL    string    `json:"avatarURL,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse maps a domain user to its public response shape.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		Email:        user.Email,
		AuthProvider: string(user.AuthProvider),
		AvatarURL:    user.AvatarURL,
		CreatedAt:    user.CreatedAt,
	}
}

// LoginResponse carries the issued token pair after a successful login,
// registration, or refresh.
type LoginResponse struct {
	Token        string       `json:"token"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         UserResponse `json:"user"`
}
