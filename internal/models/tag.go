package models

import "time"

// Tag is a standalone label. Tags are not yet linked to recipes; the
// association lives outside the core schema for now.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
