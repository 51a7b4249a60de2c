package services

import (
	"context"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/fxdeck/currency_converter_app/internal/dto"
)

// UserReaderSvc defines read operations for user accounts
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user accounts
type UserWriterSvc interface {
	// CreateUser registers a local account with a bcrypt-hashed password.
	// ErrDuplicate when the email is already registered.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// CreateOAuthUser finds or creates an account for a validated OAuth identity.
	CreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name, avatarURL string) (*domain.User, error)

	// UpdateRefreshTokenDetails stores the hashed refresh token on the user.
	// A nil expiry clears it.
	UpdateRefreshTokenDetails(ctx context.Context, userID, tokenHash string, expiry *time.Time) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
