package services

import (
	"context"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues and validates the application's token pair.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it with
	// its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and its expiry time.
	// Only a hash of it is ever persisted.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a raw refresh token against the
	// user's stored hash and expiry, returning the user on success.
	ValidateAndParseRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the OAuth code-exchange flow.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges a frontend-supplied authorization code for
	// Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the ID token's signature and audience and
	// returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
