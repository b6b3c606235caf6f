package database

import (
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

// Migrate applies the schema for every domain entity. Child tables are
// listed after their parents so foreign keys resolve on first run.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Spice{},
		&models.MedicinalProperty{},
		&models.NutritionalInfo{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Instruction{},
		&models.RecipeSpice{},
		&models.Rating{},
		&models.Collection{},
		&models.CollectionRecipe{},
		&models.Tag{},
		&models.Article{},
		&models.Comment{},
	)
}
