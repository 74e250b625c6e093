package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// FavoriteRepository favorite data access for authenticated users
type FavoriteRepository interface {
	Create(userID, propertyID string) error
	Delete(userID, propertyID string) error
	FindByUser(userID string) ([]string, error)
	Exists(userID, propertyID string) (bool, error)
	Replace(userID string, propertyIDs []string) error
	Count() (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create adds a favorite pair. Adding an existing pair is a no-op.
func (r *favoriteRepository) Create(userID, propertyID string) error {
	fav := &domain.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}
	return r.db.Where(domain.Favorite{UserID: userID, PropertyID: propertyID}).
		FirstOrCreate(fav).Error
}

// Delete removes a favorite pair. Removing an absent pair is a no-op.
func (r *favoriteRepository) Delete(userID, propertyID string) error {
	return r.db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&domain.Favorite{}).Error
}

// FindByUser returns the user's favorited property IDs in insertion order
func (r *favoriteRepository) FindByUser(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("property_id", &ids).Error
	return ids, err
}

func (r *favoriteRepository) Exists(userID, propertyID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	return count > 0, err
}

// Replace swaps the user's whole favorite set in one transaction
func (r *favoriteRepository) Replace(userID string, propertyIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		if len(propertyIDs) == 0 {
			return nil
		}
		now := time.Now()
		favorites := make([]domain.Favorite, len(propertyIDs))
		for i, id := range propertyIDs {
			favorites[i] = domain.Favorite{UserID: userID, PropertyID: id, CreatedAt: now}
		}
		return tx.Create(&favorites).Error
	})
}

func (r *favoriteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Favorite{}).Count(&count).Error
	return count, err
}
