package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/middleware"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
)

// UserController handles profile routes for authenticated users.
type UserController struct {
	service services.UserService
}

func NewUserController(service services.UserService) *UserController {
	return &UserController{service: service}
}

func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := uc.service.GetUserByID(id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe updates the calling user's own profile.
func (uc *UserController) UpdateMe(c *gin.Context) {
	var req struct {
		Name        string              `json:"name"`
		Bio         string              `json:"bio"`
		Preferences *models.Preferences `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	user, err := uc.service.UpdateProfile(userID, req.Name, req.Bio, req.Preferences)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeactivateMe soft-deactivates the calling user's own account.
func (uc *UserController) DeactivateMe(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	if err := uc.service.DeactivateUser(userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
