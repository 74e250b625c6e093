package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// InquiryRepository inquiry data access interface
type InquiryRepository interface {
	Create(inquiry *domain.Inquiry) error
	FindByID(id string) (*domain.Inquiry, error)
	Find(status domain.InquiryStatus, page, limit int) ([]domain.Inquiry, int64, error)
	UpdateStatus(id string, status domain.InquiryStatus) error
	Count() (int64, error)
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(inquiry *domain.Inquiry) error {
	return r.db.Create(inquiry).Error
}

func (r *inquiryRepository) FindByID(id string) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	err := r.db.First(&inquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

// Find returns inquiries newest first, optionally filtered by status
func (r *inquiryRepository) Find(status domain.InquiryStatus, page, limit int) ([]domain.Inquiry, int64, error) {
	query := r.db.Model(&domain.Inquiry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inquiries []domain.Inquiry
	offset := (page - 1) * limit
	err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&inquiries).Error
	return inquiries, total, err
}

func (r *inquiryRepository) UpdateStatus(id string, status domain.InquiryStatus) error {
	result := r.db.Model(&domain.Inquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrInquiryNotFound
	}
	return nil
}

func (r *inquiryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Inquiry{}).Count(&count).Error
	return count, err
}
