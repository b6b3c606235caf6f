package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for password hashing. Kept moderate so
// seeding stays fast while still being a realistic production setting.
const BcryptCost = 10

// Preferences is a per-user settings document stored as JSON.
type Preferences struct {
	FavoriteSpices      []string `json:"favoriteSpices"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	SkillLevel          string   `json:"skillLevel"`
}

// User is an account holder. Users are never hard-deleted; deactivation
// flips IsActive instead.
type User struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Email           string      `gorm:"uniqueIndex;not null" json:"email"`
	Password        string      `gorm:"not null" json:"-"`
	Name            string      `json:"name"`
	IsActive        bool        `gorm:"default:true" json:"isActive"`
	IsEmailVerified bool        `json:"isEmailVerified"`
	Bio             string      `json:"bio"`
	Preferences     Preferences `gorm:"serializer:json" json:"preferences"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// HashPassword replaces the plaintext Password field with its bcrypt hash.
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), BcryptCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a plaintext candidate against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
