package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/scentmatch/server/internal/errors"
)

// gin context keys set by the middleware
const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the authenticated user on the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "bearer token required")
			c.Abort()

			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			apierrors.Unauthorized(c, "invalid or expired token")
			c.Abort()

			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)

		c.Next()
	}
}

// OptionalAuthMiddleware stores the user when a valid token is present but
// lets anonymous requests through. Used on quiz endpoints, which work for
// guests and attach sessions to an account when one is known.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := ValidateJWT(token); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxUserEmail, claims.Email)
			}
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user ID, if any.
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ctxUserID)

	return userID, userID != ""
}

// GetUserEmail returns the authenticated user's email, if any.
func GetUserEmail(c *gin.Context) (string, bool) {
	email := c.GetString(ctxUserEmail)

	return email, email != ""
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}
