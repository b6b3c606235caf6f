package services

import (
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

// SpiceService provides access to the spice catalog and its nested
// medicinal/nutritional facts.
type SpiceService interface {
	GetAllSpices(name string, popularOnly bool) ([]models.Spice, error)
	GetSpiceByID(id uint) (*models.Spice, error)
	GetSpiceByName(name string) (*models.Spice, error)
	CreateSpice(spice *models.Spice) error
	UpdateSpice(spice *models.Spice) error
	// DeleteSpice removes a spice and all of its owned children in one
	// transaction: medicinal properties, nutritional rows and any
	// recipe-spice links pointing at it.
	DeleteSpice(id uint) error
	AddMedicinalProperty(prop *models.MedicinalProperty) error
	AddNutritionalInfo(info *models.NutritionalInfo) error
}

type spiceService struct {
	db *gorm.DB
}

func NewSpiceService(db *gorm.DB) SpiceService {
	return &spiceService{db: db}
}

func (s *spiceService) GetAllSpices(name string, popularOnly bool) ([]models.Spice, error) {
	query := s.db.Order("name")
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if popularOnly {
		query = query.Where("is_popular = ?", true)
	}

	var spices []models.Spice
	if err := query.Find(&spices).Error; err != nil {
		return nil, err
	}
	return spices, nil
}

func (s *spiceService) GetSpiceByID(id uint) (*models.Spice, error) {
	var spice models.Spice
	err := s.db.Preload("MedicinalProperties").Preload("NutritionalInfo").First(&spice, id).Error
	if err != nil {
		return nil, err
	}
	return &spice, nil
}

func (s *spiceService) GetSpiceByName(name string) (*models.Spice, error) {
	var spice models.Spice
	if err := s.db.Where("name = ?", name).First(&spice).Error; err != nil {
		return nil, err
	}
	return &spice, nil
}

func (s *spiceService) CreateSpice(spice *models.Spice) error {
	return s.db.Create(spice).Error
}

func (s *spiceService) UpdateSpice(spice *models.Spice) error {
	return s.db.Save(spice).Error
}

func (s *spiceService) DeleteSpice(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var spice models.Spice
		if err := tx.First(&spice, id).Error; err != nil {
			return err
		}

		if err := tx.Where("spice_id = ?", id).Delete(&models.MedicinalProperty{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spice_id = ?", id).Delete(&models.NutritionalInfo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spice_id = ?", id).Delete(&models.RecipeSpice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&spice).Error
	})
}

func (s *spiceService) AddMedicinalProperty(prop *models.MedicinalProperty) error {
	if err := s.db.First(&models.Spice{}, prop.SpiceID).Error; err != nil {
		return err
	}
	return s.db.Create(prop).Error
}

func (s *spiceService) AddNutritionalInfo(info *models.NutritionalInfo) error {
	if err := s.db.First(&models.Spice{}, info.SpiceID).Error; err != nil {
		return err
	}
	return s.db.Create(info).Error
}
