package middleware

import (
	"errors"
	"net/http"
	"strings"

	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	ContextClaimsKey   = "claims"
)

// AuthRequired rejects requests without a valid bearer access token and
// stores the verified claims on the gin context for handlers.
func AuthRequired(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication credentials were not provided"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authorization header must be of the form 'Bearer <token>'"})
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			status := http.StatusUnauthorized
			detail := "invalid token"
			if errors.Is(err, service.ErrExpiredToken) {
				detail = "token has expired"
			}
			c.AbortWithStatusJSON(status, gin.H{"detail": detail})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's ID, or "" when the
// request passed through no auth middleware.
func UserIDFromContext(c *gin.Context) string {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

func ClaimsFromContext(c *gin.Context) *service.Claims {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.Claims)
	return claims
}
