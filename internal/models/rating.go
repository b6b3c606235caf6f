package models

import "time"

// Rating is one user's score for one recipe. Values are 1-5, enforced at
// the API layer. A user may rate the same recipe more than once; the
// product has not settled on a one-rating-per-user rule yet.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	RecipeID  uint      `gorm:"not null;index" json:"recipeId"`
	Value     int       `gorm:"not null" json:"value"`
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}
