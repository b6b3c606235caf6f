package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/middleware"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
)

// CollectionController handles recipe collection routes.
type CollectionController struct {
	service services.CollectionService
}

func NewCollectionController(service services.CollectionService) *CollectionController {
	return &CollectionController{service: service}
}

func (cc *CollectionController) GetCollections(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	collections, err := cc.service.GetCollectionsForUser(userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, collections)
}

func (cc *CollectionController) GetCollection(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	collection, err := cc.service.GetCollectionByID(id, userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (cc *CollectionController) CreateCollection(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		IsPublic    bool   `json:"isPublic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	collection := &models.Collection{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}

	if err := cc.service.CreateCollection(collection); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, collection)
}

func (cc *CollectionController) DeleteCollection(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if err := cc.service.DeleteCollection(id, userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CollectionController) AddRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		RecipeID uint `json:"recipeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if err := cc.service.AddRecipe(id, req.RecipeID, userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusCreated)
}

func (cc *CollectionController) RemoveRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	recipeID, err := strconv.ParseUint(c.Param("recipeId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewAPIError(models.ErrBadRequest, "Invalid recipe id format"))
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if err := cc.service.RemoveRecipe(id, uint(recipeID), userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
