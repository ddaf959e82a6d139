// services/review_service.go
package services

import (
	"errors"
	"fmt"

	"travel-backend/models"

	"gorm.io/gorm"
)

// ReviewService wraps *gorm.DB for review CRUD. The 1-5 rating bound is
// checked at the request layer before anything reaches here.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

func (s *ReviewService) List() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Get(id uint) (models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Review{}, ErrNotFound
		}
		return models.Review{}, fmt.Errorf("get review %d: %w", id, err)
	}
	return review, nil
}

func (s *ReviewService) Create(review *models.Review) error {
	if err := s.DB.First(&models.Listing{}, review.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return fmt.Errorf("resolve listing %d: %w", review.ListingID, err)
	}
	if err := s.DB.First(&models.User{}, review.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("resolve user %d: %w", review.UserID, err)
	}
	if err := s.DB.Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (s *ReviewService) Update(id uint, fields map[string]interface{}) (models.Review, error) {
	review, err := s.Get(id)
	if err != nil {
		return models.Review{}, err
	}
	if len(fields) > 0 {
		if err := s.DB.Model(&review).Updates(fields).Error; err != nil {
			return models.Review{}, fmt.Errorf("update review %d: %w", id, err)
		}
	}
	return s.Get(id)
}

func (s *ReviewService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.DB.Delete(&models.Review{}, id).Error
}
