package services

import (
	"sort"

	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

// RecipeFilter narrows GetAllRecipes results. Zero values mean "any".
type RecipeFilter struct {
	Cuisine      string
	AuthorID     uint
	FeaturedOnly bool
}

type RecipeService interface {
	GetAllRecipes(filter RecipeFilter) ([]models.Recipe, error)
	GetRecipeByID(id uint) (*models.Recipe, error)
	// CreateRecipe inserts the recipe together with its ingredients,
	// instructions and spice links as one transactional unit; a failure
	// midway leaves no partial recipe behind.
	CreateRecipe(recipe *models.Recipe) error
	UpdateRecipe(recipe *models.Recipe) error
	// DeleteRecipe removes the recipe and all owned children in one
	// transaction.
	DeleteRecipe(id uint) error
}

type recipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) RecipeService {
	return &recipeService{db: db}
}

func (s *recipeService) GetAllRecipes(filter RecipeFilter) ([]models.Recipe, error) {
	query := s.db.Order("id")
	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", filter.Cuisine)
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *recipeService) GetRecipeByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		Preload("Instructions", func(db *gorm.DB) *gorm.DB { return db.Order("step_number") }).
		Preload("SpiceLinks.Spice").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *recipeService) CreateRecipe(recipe *models.Recipe) error {
	normalizeOrdering(recipe)
	// gorm creates the parent and every nested child inside a single
	// transaction, which closes the partial-write gap for multi-row inserts.
	return s.db.Create(recipe).Error
}

func (s *recipeService) UpdateRecipe(recipe *models.Recipe) error {
	normalizeOrdering(recipe)
	return s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(recipe).Error
}

func (s *recipeService) DeleteRecipe(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, id).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Instruction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeSpice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.CollectionRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// normalizeOrdering keeps Ingredient.Order and Instruction.StepNumber
// contiguous from 1. Caller-supplied values decide the relative order only.
func normalizeOrdering(recipe *models.Recipe) {
	sort.SliceStable(recipe.Ingredients, func(i, j int) bool {
		return recipe.Ingredients[i].Order < recipe.Ingredients[j].Order
	})
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].Order = i + 1
	}

	sort.SliceStable(recipe.Instructions, func(i, j int) bool {
		return recipe.Instructions[i].StepNumber < recipe.Instructions[j].StepNumber
	})
	for i := range recipe.Instructions {
		recipe.Instructions[i].StepNumber = i + 1
	}
}
