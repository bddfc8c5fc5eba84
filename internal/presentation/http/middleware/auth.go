package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/dto/response"
	"github.com/jpmanalo/bakepos-counter/pkg/utils"
)

// AuthMiddleware validates the session token and puts the session identity
// in the request context.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateSessionToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Set("username", claims.Username)

		c.Next()
	}
}
