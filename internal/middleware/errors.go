package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
	"gorm.io/gorm"
)

// ErrorHandler is the terminal stage for request errors. Handlers forward
// failures with c.Error instead of writing responses ad hoc; after the
// chain runs, the last recorded error is mapped to a uniform JSON body.
// Unexpected errors become a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		err := ginErr.Err

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound,
				models.NewAPIError(models.ErrNotFound, "Resource not found"))
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden,
				models.NewAPIError(models.ErrForbidden, "You do not own this resource"))
		case errors.Is(err, services.ErrUserExists):
			c.JSON(http.StatusConflict,
				models.NewAPIError(models.ErrUserAlreadyExists, "A user with this email already exists"))
		case ginErr.Type == gin.ErrorTypeBind:
			c.JSON(http.StatusBadRequest,
				models.NewAPIError(models.ErrValidationFailed, err.Error()))
		default:
			log.WithError(err).WithFields(log.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error("Unhandled request error")
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(models.ErrInternalServer, "An unexpected error occurred"))
		}
	}
}
