package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/middleware"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
)

// RatingController handles recipe rating routes.
type RatingController struct {
	service services.RatingService
}

func NewRatingController(service services.RatingService) *RatingController {
	return &RatingController{service: service}
}

// GetRatings lists ratings for a recipe along with their average.
func (rc *RatingController) GetRatings(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Query("recipeId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewAPIError(models.ErrBadRequest, "recipeId query parameter is required"))
		return
	}

	ratings, err := rc.service.GetRatingsByRecipe(uint(recipeID))
	if err != nil {
		c.Error(err)
		return
	}
	average, err := rc.service.AverageForRecipe(uint(recipeID))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"average": average,
	})
}

func (rc *RatingController) CreateRating(c *gin.Context) {
	var req struct {
		RecipeID uint   `json:"recipeId" binding:"required"`
		Value    int    `json:"value" binding:"required,min=1,max=5"`
		Review   string `json:"review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	rating := &models.Rating{
		UserID:   userID,
		RecipeID: req.RecipeID,
		Value:    req.Value,
		Review:   req.Review,
	}

	if err := rc.service.CreateRating(rating); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (rc *RatingController) DeleteRating(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if err := rc.service.DeleteRating(id, userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
