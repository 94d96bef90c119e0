package service

import (
	"time"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the validated content of an access token. Guest sessions carry
// uuid.Nil as the user ID and the guest role.
type Claims struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// TokenService defines the interface for generating and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given identity.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks the validity of an access token string and
	// returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
