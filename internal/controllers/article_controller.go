package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/middleware"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
)

// ArticleController handles the encyclopedia article routes.
type ArticleController struct {
	service services.ArticleService
}

func NewArticleController(service services.ArticleService) *ArticleController {
	return &ArticleController{service: service}
}

func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	publishedOnly := c.Query("published") != "false"

	articles, err := ac.service.GetAllArticles(publishedOnly)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticle accepts either a numeric id or a slug in the path.
func (ac *ArticleController) GetArticle(c *gin.Context) {
	key := c.Param("id")

	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		article, err := ac.service.GetArticleByID(uint(id))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, article)
		return
	}

	article, err := ac.service.GetArticleBySlug(key)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Content     string `json:"content"`
		SpiceID     *uint  `json:"spiceId"`
		IsPublished bool   `json:"isPublished"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	article := &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    userID,
		SpiceID:     req.SpiceID,
		IsPublished: req.IsPublished,
	}

	if err := ac.service.CreateArticle(article); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	existing, err := ac.service.GetArticleByID(id)
	if err != nil {
		c.Error(err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if existing.AuthorID != userID {
		c.Error(services.ErrNotOwner)
		return
	}

	var req struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		IsPublished *bool  `json:"isPublished"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.Content != "" {
		existing.Content = req.Content
	}
	if req.IsPublished != nil {
		existing.IsPublished = *req.IsPublished
	}
	existing.Comments = nil

	if err := ac.service.UpdateArticle(existing); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	existing, err := ac.service.GetArticleByID(id)
	if err != nil {
		c.Error(err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if existing.AuthorID != userID {
		c.Error(services.ErrNotOwner)
		return
	}

	if err := ac.service.DeleteArticle(id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
