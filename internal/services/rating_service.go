package services

import (
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

type RatingService interface {
	GetRatingsByRecipe(recipeID uint) ([]models.Rating, error)
	// AverageForRecipe returns the mean rating value, 0 when unrated.
	AverageForRecipe(recipeID uint) (float64, error)
	CreateRating(rating *models.Rating) error
	DeleteRating(id, userID uint) error
}

type ratingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) RatingService {
	return &ratingService{db: db}
}

func (s *ratingService) GetRatingsByRecipe(recipeID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.Where("recipe_id = ?", recipeID).Order("created_at DESC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *ratingService) AverageForRecipe(recipeID uint) (float64, error) {
	var avg *float64
	err := s.db.Model(&models.Rating{}).
		Where("recipe_id = ?", recipeID).
		Select("AVG(value)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// CreateRating stores a new rating. Repeat ratings from the same user on
// the same recipe are allowed; the product has not asked for a
// one-per-user rule.
func (s *ratingService) CreateRating(rating *models.Rating) error {
	if err := s.db.First(&models.Recipe{}, rating.RecipeID).Error; err != nil {
		return err
	}
	return s.db.Create(rating).Error
}

func (s *ratingService) DeleteRating(id, userID uint) error {
	var rating models.Rating
	if err := s.db.First(&rating, id).Error; err != nil {
		return err
	}
	if rating.UserID != userID {
		return ErrNotOwner
	}
	return s.db.Delete(&rating).Error
}
