package services

import (
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

// SearchResults groups matches across the three searchable entity types.
type SearchResults struct {
	Spices   []models.Spice   `json:"spices"`
	Recipes  []models.Recipe  `json:"recipes"`
	Articles []models.Article `json:"articles"`
}

type SearchService interface {
	// Search runs a case-insensitive substring match over spice names,
	// recipe titles and published article titles.
	Search(query string) (*SearchResults, error)
}

type searchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) SearchService {
	return &searchService{db: db}
}

func (s *searchService) Search(query string) (*SearchResults, error) {
	pattern := "%" + query + "%"
	results := &SearchResults{}

	if err := s.db.Where("name LIKE ?", pattern).Order("name").Find(&results.Spices).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("title LIKE ?", pattern).Order("title").Find(&results.Recipes).Error; err != nil {
		return nil, err
	}
	err := s.db.Where("title LIKE ? AND is_published = ?", pattern, true).
		Order("title").Find(&results.Articles).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
