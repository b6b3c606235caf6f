package models

import "time"

// Article is an encyclopedia entry: a long-form piece about a spice,
// technique or cuisine. SpiceID is optional; general articles leave it nil.
type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content     string    `gorm:"type:text" json:"content"`
	AuthorID    uint      `gorm:"not null;index" json:"authorId"`
	SpiceID     *uint     `gorm:"index" json:"spiceId,omitempty"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
