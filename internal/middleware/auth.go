package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/session"
)

// RequireAuth gates a route group behind a valid session. Unauthenticated
// requests get a uniform 401 and never reach the downstream router.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Current(c)
		if sess == nil || sess.UserID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewAPIError(models.ErrUnauthorized, "Authentication required"))
			return
		}

		c.Set("userID", sess.UserID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
