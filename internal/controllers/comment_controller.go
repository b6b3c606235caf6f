package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/middleware"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
)

// CommentController handles article comment routes.
type CommentController struct {
	service services.CommentService
}

func NewCommentController(service services.CommentService) *CommentController {
	return &CommentController{service: service}
}

func (cc *CommentController) GetComments(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Query("articleId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewAPIError(models.ErrBadRequest, "articleId query parameter is required"))
		return
	}

	comments, err := cc.service.GetCommentsByArticle(uint(articleID))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	var req struct {
		ArticleID uint   `json:"articleId" binding:"required"`
		Content   string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	comment := &models.Comment{
		UserID:    userID,
		ArticleID: req.ArticleID,
		Content:   req.Content,
	}

	if err := cc.service.CreateComment(comment); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if err := cc.service.DeleteComment(id, userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
