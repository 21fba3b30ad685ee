package authorization

import (
	"github.com/gin-gonic/gin"

	"raffle/internal/shared/errors"
	"raffle/internal/shared/utils"
)

// RequireAdmin aborts with 403 unless the authenticated caller is an admin.
// It must run after the auth middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ParseUserRole(c.GetString(ContextKeyUserRole)).IsAdmin() {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated participant id, or "" when absent.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}
