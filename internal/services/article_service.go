package services

import (
	"strings"

	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

type ArticleService interface {
	GetAllArticles(publishedOnly bool) ([]models.Article, error)
	GetArticleByID(id uint) (*models.Article, error)
	GetArticleBySlug(slug string) (*models.Article, error)
	CreateArticle(article *models.Article) error
	UpdateArticle(article *models.Article) error
	DeleteArticle(id uint) error
}

type articleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) ArticleService {
	return &articleService{db: db}
}

func (s *articleService) GetAllArticles(publishedOnly bool) ([]models.Article, error) {
	query := s.db.Order("created_at DESC")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleService) GetArticleByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := s.db.Preload("Comments").First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *articleService) GetArticleBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := s.db.Preload("Comments").Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *articleService) CreateArticle(article *models.Article) error {
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}
	return s.db.Create(article).Error
}

func (s *articleService) UpdateArticle(article *models.Article) error {
	return s.db.Save(article).Error
}

func (s *articleService) DeleteArticle(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, id).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&article).Error
	})
}

// Slugify turns a title into a URL-safe slug.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := true
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
