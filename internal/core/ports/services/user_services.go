package services

import (
	"context"
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
)

// UserReaderSvc defines read operations for user identities
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a non-deleted user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user identities
type UserWriterSvc interface {
	// RegisterUser creates a new user with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, email, name, password string) (*domain.User, error)

	// AuthenticateUser verifies email/password credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// StoreRefreshToken persists the hash of a newly issued refresh token.
	StoreRefreshToken(ctx context.Context, userID, rawToken string, expiryTime time.Time) error

	// ClearRefreshToken invalidates the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines the user service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

// TokenSvcFacade handles JWT access tokens and refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token for the given user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a raw refresh token against the
	// stored hash and returns the associated user.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleTokenVerifierSvc validates Google ID tokens during OAuth sign-in.
type GoogleTokenVerifierSvc interface {
	// VerifyIDToken validates the token signature and audience and returns
	// the email and display name it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (email string, name string, err error)
}
