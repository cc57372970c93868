package middleware

import (
	"net/http"
	"strings"

	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	userIDContextKey   = "userID"
	usernameContextKey = "username"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the gin context.
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization token required"})
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Set(usernameContextKey, claims.Username)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID set by RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(userIDContextKey)
}

// CurrentUsername returns the authenticated user's username set by RequireAuth.
func CurrentUsername(c *gin.Context) string {
	return c.GetString(usernameContextKey)
}
