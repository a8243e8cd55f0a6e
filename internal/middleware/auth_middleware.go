package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// AuthMiddleware guards write routes with an admin bearer token
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware. A nil jwtService disables the guard.
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Enabled reports whether write routes require a token
func (m *AuthMiddleware) Enabled() bool {
	return m != nil && m.jwtService != nil
}

// AdminRequired rejects requests without a valid admin token. It passes
// everything through when the guard is disabled.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HandleAPIError(c, dto.OpError, apperrors.ErrUnauthorized)
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, dto.OpError, err)
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			HandleAPIError(c, dto.OpError, err)
			return
		}

		if !claims.IsAdmin() {
			HandleAPIError(c, dto.OpError, apperrors.NewForbiddenError("Admin role required"))
			return
		}

		c.Next()
	}
}
