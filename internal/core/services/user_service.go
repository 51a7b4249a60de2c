package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/apperrors"
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	portsrepo "github.com/fxdeck/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/fxdeck/currency_converter_app/internal/core/ports/services"
	"github.com/fxdeck/currency_converter_app/internal/dto"
	"github.com/fxdeck/currency_converter_app/internal/utils"
	"github.com/google/uuid"
)

// userService implements UserSvcFacade on top of the user repository.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// CreateUser registers a local account. The email is normalized to lowercase
// before the duplicate check so case variants collide.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        email,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save new user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// CreateOAuthUser finds the account tied to an OAuth identity, or to the same
// email, or creates a fresh one. An existing local account with the same
// email is returned unchanged so the two login methods converge on one user.
func (s *userService) CreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name, avatarURL string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}

	if email != "" {
		user, err = s.userRepo.FindUserByEmail(ctx, email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user by email: %w", err)
		}
	}

	now := time.Now()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Username:       name,
		Email:          email,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AvatarURL:      avatarURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save oauth user")
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}

	return &newUser, nil
}

// UpdateRefreshTokenDetails stores the hashed refresh token on the user.
func (s *userService) UpdateRefreshTokenDetails(ctx context.Context, userID, tokenHash string, expiry *time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, expiry); err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email, normalized to lowercase.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
