package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkr/internal/services"
	"linkr/pkg/auth"
)

const UserIDKey = "userID"

// AuthMiddleware проверяет сессионный токен перед защищенными операциями
func AuthMiddleware(sessions services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		session, err := sessions.GetSessionByToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, session.UserID)
		c.Next()
	}
}
