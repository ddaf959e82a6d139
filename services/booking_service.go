// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"travel-backend/models"
	"travel-backend/mq"
	"travel-backend/notifications"

	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
)

// BookingService wraps *gorm.DB and the task queue. Creating a booking
// persists first, then enqueues exactly one notification task; the enqueue
// is best-effort and never fails the request.
type BookingService struct {
	DB    *gorm.DB
	Tasks mq.TaskQueue
}

func NewBookingService(db *gorm.DB, tasks mq.TaskQueue) *BookingService {
	return &BookingService{DB: db, Tasks: tasks}
}

func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Listing").Preload("User").
		Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) Get(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Listing").Preload("User").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, fmt.Errorf("get booking %d: %w", id, err)
	}
	return booking, nil
}

// Create validates the referenced listing and user, persists the booking and
// enqueues the confirmation task. No task is enqueued when persistence fails.
func (s *BookingService) Create(ctx context.Context, booking *models.Booking) (models.Booking, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, booking.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrListingNotFound
		}
		return models.Booking{}, fmt.Errorf("resolve listing %d: %w", booking.ListingID, err)
	}
	var user models.User
	if err := s.DB.First(&user, booking.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrUserNotFound
		}
		return models.Booking{}, fmt.Errorf("resolve user %d: %w", booking.UserID, err)
	}

	if err := s.DB.Create(booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	task := notifications.BookingCreated{
		BookingID: booking.ID,
		UserEmail: user.Email,
		ListTitle: listing.Title,
	}
	if err := s.Tasks.PublishJSON(ctx, notifications.RKBookingCreated, task); err != nil {
		// The booking is already committed; notification stays best-effort.
		log.Printf("enqueue booking confirmation for %d failed: %v", booking.ID, err)
	}

	return s.Get(booking.ID)
}

func (s *BookingService) Update(id uint, fields map[string]interface{}) (models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return models.Booking{}, err
	}
	if len(fields) > 0 {
		if err := s.DB.Model(&booking).Updates(fields).Error; err != nil {
			return models.Booking{}, fmt.Errorf("update booking %d: %w", id, err)
		}
	}
	return s.Get(id)
}

func (s *BookingService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.DB.Delete(&models.Booking{}, id).Error
}
