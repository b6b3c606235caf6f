package services

import (
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

type CollectionService interface {
	// GetCollectionsForUser lists the user's own collections plus every
	// public one from other users.
	GetCollectionsForUser(userID uint) ([]models.Collection, error)
	GetCollectionByID(id, userID uint) (*models.Collection, error)
	CreateCollection(collection *models.Collection) error
	DeleteCollection(id, userID uint) error
	AddRecipe(collectionID, recipeID, userID uint) error
	RemoveRecipe(collectionID, recipeID, userID uint) error
}

type collectionService struct {
	db *gorm.DB
}

func NewCollectionService(db *gorm.DB) CollectionService {
	return &collectionService{db: db}
}

func (s *collectionService) GetCollectionsForUser(userID uint) ([]models.Collection, error) {
	var collections []models.Collection
	err := s.db.Where("user_id = ? OR is_public = ?", userID, true).Order("id").Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (s *collectionService) GetCollectionByID(id, userID uint) (*models.Collection, error) {
	var collection models.Collection
	err := s.db.Preload("Recipes.Recipe").First(&collection, id).Error
	if err != nil {
		return nil, err
	}
	// Private collections are visible to their owner only.
	if !collection.IsPublic && collection.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &collection, nil
}

func (s *collectionService) CreateCollection(collection *models.Collection) error {
	return s.db.Create(collection).Error
}

func (s *collectionService) DeleteCollection(id, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var collection models.Collection
		if err := tx.First(&collection, id).Error; err != nil {
			return err
		}
		if collection.UserID != userID {
			return ErrNotOwner
		}
		if err := tx.Where("collection_id = ?", id).Delete(&models.CollectionRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&collection).Error
	})
}

func (s *collectionService) AddRecipe(collectionID, recipeID, userID uint) error {
	var collection models.Collection
	if err := s.db.First(&collection, collectionID).Error; err != nil {
		return err
	}
	if collection.UserID != userID {
		return ErrNotOwner
	}
	if err := s.db.First(&models.Recipe{}, recipeID).Error; err != nil {
		return err
	}

	link := models.CollectionRecipe{CollectionID: collectionID, RecipeID: recipeID}
	return s.db.Create(&link).Error
}

func (s *collectionService) RemoveRecipe(collectionID, recipeID, userID uint) error {
	var collection models.Collection
	if err := s.db.First(&collection, collectionID).Error; err != nil {
		return err
	}
	if collection.UserID != userID {
		return ErrNotOwner
	}

	return s.db.Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Delete(&models.CollectionRecipe{}).Error
}
