package middleware

import (
	"strings"

	"ideaboard/services"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// BearerAuth identifies API clients by the token handed out at login. Requests
// without an Authorization header pass through untouched; a header carrying a bad
// or revoked token is rejected.
func BearerAuth(tokens *services.TokenService, blacklist *services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if blacklist.IsBlacklisted(c.Request.Context(), tokenString) {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Token has been invalidated")
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		// A cookie session takes precedence.
		if _, _, ok := CurrentUser(c); !ok {
			c.Set(userIDKey, claims.UserID)
			c.Set(usernameKey, claims.Username)
		}
		c.Set("token", tokenString)
		c.Set("token_expires_at", claims.ExpiresAt.Time)
		c.Next()
	}
}

// RequireUser rejects requests that carry neither a session nor a valid token.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := CurrentUser(c); !ok {
			utils.Forbidden(c, "Not logged in")
			c.Abort()
			return
		}
		c.Next()
	}
}
