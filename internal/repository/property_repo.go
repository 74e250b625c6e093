package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// PropertyRepository property data access interface
type PropertyRepository interface {
	FindAll() ([]domain.Property, error)
	FindByID(id string) (*domain.Property, error)
	Create(p *domain.Property) error
	Update(p *domain.Property) error
	Delete(id string) error
	Count() (int64, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// FindAll returns the whole collection in insertion order. The search
// pipeline depends on this order being stable.
func (r *propertyRepository) FindAll() ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, id ASC")
	}).Order("created_at ASC, id ASC").Find(&properties).Error
	return properties, err
}

func (r *propertyRepository) FindByID(id string) (*domain.Property, error) {
	var p domain.Property
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, id ASC")
	}).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) Create(p *domain.Property) error {
	return r.db.Create(p).Error
}

// Update replaces the row and its images
func (r *propertyRepository) Update(p *domain.Property) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if p.Images != nil {
			if err := tx.Where("property_id = ?", p.ID).Delete(&domain.PropertyImage{}).Error; err != nil {
				return err
			}
			for i := range p.Images {
				p.Images[i].ID = 0
				p.Images[i].PropertyID = p.ID
				p.Images[i].Position = i
			}
			if err := tx.Create(&p.Images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *propertyRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&domain.PropertyImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Property{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrPropertyNotFound
		}
		return nil
	})
}

func (r *propertyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Property{}).Count(&count).Error
	return count, err
}
