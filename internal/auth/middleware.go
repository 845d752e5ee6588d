package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
	ctxUserRole  = "user_role"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns an empty string when the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware validates the access token and stores the staff identity
// on the request context.
func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "missing or malformed authorization header")
			return
		}

		claims, err := ValidateToken(token, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				abortUnauthorized(c, "token expired")
			case errors.Is(err, ErrInvalidTokenType):
				abortUnauthorized(c, "invalid token type")
			default:
				abortUnauthorized(c, "invalid token")
			}
			return
		}

		if claims.TokenType != tokenTypeAccess {
			abortUnauthorized(c, "access token required")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole restricts a route to staff accounts holding the given role.
// Must run after AuthMiddleware.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ctxUserRole)
		if !ok {
			abortUnauthorized(c, "role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			abortUnauthorized(c, "invalid role")
			return
		}

		if roleStr != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}

	id, ok := v.(int)
	return id, ok
}
