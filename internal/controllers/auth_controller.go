package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
	"github.com/spiceroutes/spiceroutes-api/internal/session"
)

// AuthController owns the unauthenticated boundary: registration, login and
// session teardown. It is the only controller that talks to the session
// manager directly.
type AuthController struct {
	userService services.UserService
	sessions    *session.Manager
}

func NewAuthController(userService services.UserService, sessions *session.Manager) *AuthController {
	return &AuthController{
		userService: userService,
		sessions:    sessions,
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		IsActive: true,
	}

	if err := user.HashPassword(); err != nil {
		c.Error(err)
		return
	}

	if err := ac.userService.CreateUser(user); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	user, err := ac.userService.GetUserByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized,
			models.NewAPIError(models.ErrInvalidCredentials, "Invalid email or password"))
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized,
			models.NewAPIError(models.ErrInvalidCredentials, "Account is deactivated"))
		return
	}

	if _, err := ac.sessions.Start(c, user.ID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.sessions.Destroy(c); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged_out"})
}

// Me returns the profile behind the current session; it lives on the public
// auth group and does its own session check so the frontend can probe login
// state without triggering the uniform 401 gate.
func (ac *AuthController) Me(c *gin.Context) {
	sess := session.Current(c)
	if sess == nil || sess.UserID == 0 {
		c.JSON(http.StatusUnauthorized,
			models.NewAPIError(models.ErrUnauthorized, "Not logged in"))
		return
	}

	user, err := ac.userService.GetUserByID(sess.UserID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}
