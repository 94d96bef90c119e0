package middleware

import (
	"strings"

	"mazraa/internal/delivery/http/response"
	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/service"
	"mazraa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	userIDContextKey = "userID"
	roleContextKey   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity on
// the context. Guest sessions are real tokens too (nil user ID, guest role),
// so authorization stays a per-operation decision downstream.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		role := entity.RoleGuest
		if len(claims.Roles) > 0 {
			role = claims.Roles[0]
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Set(roleContextKey, role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's role. It must
// be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(roleContextKey).(entity.Role)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			if role != required {
				return response.Forbidden(c, "ROLE_REQUIRED", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}

// ActorFromContext rebuilds the identity stored by Authenticate. Requests
// that skipped authentication resolve to a guest actor.
func ActorFromContext(c echo.Context) usecase.Actor {
	actor := usecase.Actor{Role: entity.RoleGuest}

	if id, ok := c.Get(userIDContextKey).(uuid.UUID); ok {
		actor.ID = id
	}
	if role, ok := c.Get(roleContextKey).(entity.Role); ok {
		actor.Role = role
	}

	return actor
}
