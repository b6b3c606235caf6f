package services

import (
	"errors"

	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

// ErrNotOwner is returned when a user tries to modify a resource that
// belongs to somebody else.
var ErrNotOwner = errors.New("not the resource owner")

type CommentService interface {
	GetCommentsByArticle(articleID uint) ([]models.Comment, error)
	CreateComment(comment *models.Comment) error
	DeleteComment(id, userID uint) error
}

type commentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) CommentService {
	return &commentService{db: db}
}

func (s *commentService) GetCommentsByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("article_id = ?", articleID).Order("created_at").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentService) CreateComment(comment *models.Comment) error {
	if err := s.db.First(&models.Article{}, comment.ArticleID).Error; err != nil {
		return err
	}
	return s.db.Create(comment).Error
}

// DeleteComment removes a comment, but only for its author.
func (s *commentService) DeleteComment(id, userID uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return err
	}
	if comment.UserID != userID {
		return ErrNotOwner
	}
	return s.db.Delete(&comment).Error
}
