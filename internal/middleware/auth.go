package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbercraft/internal/auth"
	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
)

const (
	ContextClaims   = "claims"
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

const (
	msgTokenRequired = "Access token required"
	msgTokenInvalid  = "Invalid or expired token"
	msgAdminRequired = "Admin access required"
)

func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			httperr.Unauthorized(c, msgTokenRequired)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, msgTokenRequired)
			return
		}
		if !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, msgTokenInvalid)
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, msgTokenInvalid)
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextUserID, claims.ID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok || !claims.IsAdmin() {
			httperr.Forbidden(c, msgAdminRequired)
			return
		}
		c.Next()
	}
}

func Claims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

// Scope is the ownership scope of the authenticated caller.
func Scope(c *gin.Context) access.Scope {
	return access.For(c.GetUint(ContextUserID), c.GetString(ContextUserRole))
}
