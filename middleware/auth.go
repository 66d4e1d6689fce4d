package middleware

import (
	"net/http"
	"strings"

	"bookstore-api/auth"
	"bookstore-api/dtos"
	"bookstore-api/repositories"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key under which RequireAuth stores the
// resolved *entities.User.
const ContextUserKey = "currentUser"

// RequireAuth verifies the bearer token, loads the corresponding user and
// attaches it to the request context. Any failure short-circuits with 401
// before the handler (and any persistence call it would make) runs.
func RequireAuth(users repositories.UserRepository, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.AuthError("No token, authorization denied"))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, err := auth.GetUserIDFromToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.AuthError("Token is not valid"))
			return
		}

		// The token may outlive its account
		user, err := users.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.AuthError("User not found"))
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
