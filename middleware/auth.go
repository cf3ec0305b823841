package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"postboard/auth"
	"postboard/database"
	"postboard/models"
)

const contextUserKey = "currentUser"

// JWTAuthMiddleware verifies the Authorization bearer token and resolves its
// subject to a stored user before any handler runs. A missing or malformed
// header, an invalid or expired token, and a subject that no longer matches
// an account all abort the request with the same 401.
func JWTAuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "No authorization token provided")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Format should be: Bearer <token>")
			return
		}

		email, err := tokens.Verify(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token validation failed")
			return
		}

		var user models.User
		err = database.DB.Where("email = ?", email).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Stale token for an account that no longer exists.
				abortUnauthorized(c, "Token validation failed")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "Unauthorized",
		"message": message,
	})
}

// CurrentUser returns the principal resolved by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
