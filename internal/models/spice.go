package models

import (
	"time"

	"gorm.io/gorm"
)

// FlavorProfile scores a spice on seven axes, each 0-10.
type FlavorProfile struct {
	Sweet     int `json:"sweet"`
	Savory    int `json:"savory"`
	Bitter    int `json:"bitter"`
	Sour      int `json:"sour"`
	Umami     int `json:"umami"`
	Pungent   int `json:"pungent"`
	HeatLevel int `json:"heatLevel"`
}

// Spice is an encyclopedia entry for a single spice.
//
// Origin, CulinaryUses, Substitutes and Pairings are order-significant
// lists stored as JSON documents. Substitutes and Pairings refer to other
// spices by name rather than by id, mirroring how editors enter them.
type Spice struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"uniqueIndex;not null" json:"name"`
	ScientificName string        `json:"scientificName"`
	Description    string        `gorm:"type:text" json:"description"`
	Origin         []string      `gorm:"serializer:json" json:"origin"`
	ImageURL       string        `json:"imageUrl"`
	FlavorProfile  FlavorProfile `gorm:"embedded;embeddedPrefix:flavor_" json:"flavorProfile"`
	HeatLevel      int           `json:"heatLevel"`
	CulinaryUses   []string      `gorm:"serializer:json" json:"culinaryUses"`
	Substitutes    []string      `gorm:"serializer:json" json:"substitutes"`
	Pairings       []string      `gorm:"serializer:json" json:"pairings"`
	Seasonality    string        `json:"seasonality"`
	IsPopular      bool          `json:"isPopular"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`

	MedicinalProperties []MedicinalProperty `gorm:"constraint:OnDelete:CASCADE" json:"medicinalProperties,omitempty"`
	NutritionalInfo     []NutritionalInfo   `gorm:"constraint:OnDelete:CASCADE" json:"nutritionalInfo,omitempty"`
}

// BeforeSave keeps the denormalized top-level heat level in lockstep with
// the flavor profile; the profile value is authoritative.
func (s *Spice) BeforeSave(tx *gorm.DB) error {
	s.HeatLevel = s.FlavorProfile.HeatLevel
	return nil
}

// MedicinalProperty is a documented health effect of one spice.
type MedicinalProperty struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SpiceID     uint      `gorm:"not null;index" json:"spiceId"`
	Property    string    `gorm:"not null" json:"property"`
	Description string    `gorm:"type:text" json:"description"`
	Evidence    string    `json:"evidence"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NutritionalInfo is one nutrient row for one spice. Several rows per spice
// are expected and (spice, nutrient) is deliberately not unique.
type NutritionalInfo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SpiceID    uint      `gorm:"not null;index" json:"spiceId"`
	Nutrient   string    `gorm:"not null" json:"nutrient"`
	Amount     float64   `json:"amount"`
	Unit       string    `json:"unit"`
	DailyValue float64   `json:"dailyValue"`
	CreatedAt  time.Time `json:"createdAt"`
}
