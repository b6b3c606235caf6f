package models

import (
	"time"
)

// Recipe is a user-authored dish. Ingredients and Instructions are owned
// exclusively by their recipe and carry explicit order columns; spices are
// linked through RecipeSpice rows that carry per-recipe usage details.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	AuthorID    uint      `gorm:"not null;index" json:"authorId"`
	ImageURL    string    `json:"imageUrl"`
	Cuisine     string    `json:"cuisine"`
	Difficulty  string    `json:"difficulty"`
	PrepTime    int       `json:"prepTime"`
	CookTime    int       `json:"cookTime"`
	Servings    int       `json:"servings"`
	Calories    int       `json:"calories"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Author       *User         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Ingredients  []Ingredient  `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Instructions []Instruction `gorm:"constraint:OnDelete:CASCADE" json:"instructions,omitempty"`
	SpiceLinks   []RecipeSpice `gorm:"constraint:OnDelete:CASCADE" json:"spices,omitempty"`
}

// Ingredient is one line of a recipe's ingredient list. Order starts at 1
// and is contiguous within a recipe.
type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipeId"`
	Name     string `gorm:"not null" json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Order    int    `gorm:"column:order_index;not null" json:"order"`
}

// Instruction is one step of a recipe. StepNumber starts at 1 and is
// contiguous within a recipe; Duration is in minutes, 0 when unknown.
type Instruction struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RecipeID   uint   `gorm:"not null;index" json:"recipeId"`
	StepNumber int    `gorm:"not null" json:"stepNumber"`
	Content    string `gorm:"type:text;not null" json:"content"`
	Duration   int    `json:"duration"`
}

// RecipeSpice joins a recipe to a spice with the quantity and usage notes
// specific to that recipe.
type RecipeSpice struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipeId"`
	SpiceID  uint   `gorm:"not null;index" json:"spiceId"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Notes    string `json:"notes"`

	Spice *Spice `gorm:"foreignKey:SpiceID" json:"spice,omitempty"`
}

func (RecipeSpice) TableName() string {
	return "recipe_spices"
}
