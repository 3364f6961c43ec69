package middleware

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/siteguard/siteguard-api/internal/errors"
	"github.com/siteguard/siteguard-api/internal/services"
	"github.com/siteguard/siteguard-api/internal/utils"
)

const contextKeyUserID = "user_id"

// RequireAuth verifies the bearer token and resolves it to a stored user.
// Missing, malformed, expired and orphaned tokens all produce the same 401.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.ParseBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := authService.VerifyToken(token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, user.ID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(contextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
