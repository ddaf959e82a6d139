// services/listing_service.go
package services

import (
	"errors"
	"fmt"

	"travel-backend/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// ListingService wraps *gorm.DB for listing CRUD.
type ListingService struct {
	DB *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{DB: db}
}

func (s *ListingService) List() ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.DB.Order("list_date DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

func (s *ListingService) Get(id uint) (models.Listing, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Listing{}, ErrNotFound
		}
		return models.Listing{}, fmt.Errorf("get listing %d: %w", id, err)
	}
	return listing, nil
}

func (s *ListingService) Create(listing *models.Listing) error {
	if err := s.DB.Create(listing).Error; err != nil {
		return fmt.Errorf("create listing: %w", err)
	}
	return nil
}

// Update applies the given column values and returns the updated row.
func (s *ListingService) Update(id uint, fields map[string]interface{}) (models.Listing, error) {
	listing, err := s.Get(id)
	if err != nil {
		return models.Listing{}, err
	}
	if len(fields) > 0 {
		if err := s.DB.Model(&listing).Updates(fields).Error; err != nil {
			return models.Listing{}, fmt.Errorf("update listing %d: %w", id, err)
		}
	}
	return s.Get(id)
}

// Delete removes the listing and everything referencing it in one
// transaction, so a half-applied cascade can't be observed.
func (s *ListingService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Listing{}, id).Error
	})
}
