package middleware

import (
	"errors"
	"net/http"
	"strings"

	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a JWT token in the Authorization
// header and stores the caller identity in the request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(identityKey, claims.Identity())
		c.Next()
	}
}

// IdentityFrom extracts the caller identity set by AuthMiddleware.
func IdentityFrom(c *gin.Context) (service.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return service.Identity{}, false
	}
	id, ok := v.(service.Identity)
	return id, ok
}

// RequireAdmin gates a route on the Admin role. Must run after
// AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			c.Abort()
			return
		}
		if !id.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
