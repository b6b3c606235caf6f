package models

import "time"

// Collection is a user-curated set of recipes.
type Collection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Recipes []CollectionRecipe `gorm:"constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
}

// CollectionRecipe joins a collection to a recipe. The join carries no
// extra attributes today.
type CollectionRecipe struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	CollectionID uint `gorm:"not null;index" json:"collectionId"`
	RecipeID     uint `gorm:"not null;index" json:"recipeId"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

func (CollectionRecipe) TableName() string {
	return "collection_recipes"
}
