package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/platform/config"
	"github.com/eventstaff/esa_backend/internal/utils"
	"google.golang.org/api/idtoken"
)

// refreshTokenByteLength is the entropy of a raw refresh token before hex encoding.
const refreshTokenByteLength = 32

// TokenService issues JWT access tokens and rotates opaque refresh tokens.
type TokenService struct {
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewTokenService creates a new TokenService.
func NewTokenService(cfg *config.Config, userSvc portssvc.UserSvcFacade) *TokenService {
	return &TokenService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.TokenSvcFacade = (*TokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *TokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiry := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiry, nil
}

// GenerateRefreshToken creates a new opaque refresh token, stores its hash
// and returns the raw value for the cookie.
func (s *TokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.GenerateSecureRandomString(refreshTokenByteLength)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userSvc.StoreRefreshToken(ctx, user.UserID, raw, expiry); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return raw, expiry, nil
}

// ValidateAndParseRefreshToken validates a raw refresh token against the
// stored hash and returns the associated user.
func (s *TokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RefreshTokenHash == "" || !utils.CompareRefreshTokenHash(refreshTokenString, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	if user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	return user, nil
}

// GoogleTokenVerifier validates Google ID tokens against the configured
// client ID.
type GoogleTokenVerifier struct {
	clientID string
}

// NewGoogleTokenVerifier creates a verifier bound to the OAuth client ID.
func NewGoogleTokenVerifier(cfg *config.Config) *GoogleTokenVerifier {
	return &GoogleTokenVerifier{clientID: cfg.GoogleClientID}
}

var _ portssvc.GoogleTokenVerifierSvc = (*GoogleTokenVerifier)(nil)

// VerifyIDToken validates the token signature and audience and returns the
// email and display name it asserts.
func (v *GoogleTokenVerifier) VerifyIDToken(ctx context.Context, idTokenString string) (string, string, error) {
	if v.clientID == "" {
		return "", "", fmt.Errorf("google sign-in is not configured: %w", apperrors.ErrUnauthorized)
	}
	payload, err := idtoken.Validate(ctx, idTokenString, v.clientID)
	if err != nil {
		return "", "", fmt.Errorf("invalid google id token: %w", apperrors.ErrUnauthorized)
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", "", fmt.Errorf("google id token has no email claim: %w", apperrors.ErrUnauthorized)
	}
	return email, name, nil
}
