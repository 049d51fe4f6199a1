package middleware

import (
	"net/http"
	"strings"

	"github.com/adislens/medpgprep/config"
	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/token"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// Auth rejects requests without a valid bearer token. A missing user is a
// hard precondition failure, never a recoverable state further in.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization token"})
			return
		}

		userID, err := token.Parse(raw, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by Auth.
func UserID(c *gin.Context) uint {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
