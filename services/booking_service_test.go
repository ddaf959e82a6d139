package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travel-backend/models"
	"travel-backend/notifications"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	// one connection so the in-memory database survives the pool
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type publishedTask struct {
	Key  string
	Body []byte
}

type fakeQueue struct {
	published []publishedTask
}

func (f *fakeQueue) PublishJSON(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.published = append(f.published, publishedTask{Key: key, Body: b})
	return nil
}

func seedListingAndUser(t *testing.T, db *gorm.DB) (models.Listing, models.User) {
	t.Helper()
	listing := models.Listing{
		Title: "Beach House", Address: "1 Shore Rd", City: "Malibu", State: "CA",
		Zipcode: "90265", Price: 3000, Bedrooms: 3, Bathrooms: 2.5,
		Sqft: 1800, LotSize: 0.4, PhotoMain: "photos/main.jpg",
	}
	if err := db.Create(&listing).Error; err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	user := models.User{Username: "traveler", Email: "traveler@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return listing, user
}

func date(s string) datatypes.Date {
	t, _ := time.Parse("2006-01-02", s)
	return datatypes.Date(t)
}

func TestCreateBookingEnqueuesOneTask(t *testing.T) {
	db := openTestDB(t)
	listing, user := seedListingAndUser(t, db)
	queue := &fakeQueue{}
	svc := NewBookingService(db, queue)

	created, err := svc.Create(context.Background(), &models.Booking{
		ListingID:  listing.ID,
		UserID:     user.ID,
		StartDate:  date("2024-01-01"),
		EndDate:    date("2024-01-05"),
		TotalPrice: 400.00,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if len(queue.published) != 1 {
		t.Fatalf("expected exactly 1 task, got %d", len(queue.published))
	}
	task := queue.published[0]
	if task.Key != notifications.RKBookingCreated {
		t.Errorf("routing key = %q, want %q", task.Key, notifications.RKBookingCreated)
	}
	var ev notifications.BookingCreated
	if err := json.Unmarshal(task.Body, &ev); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if ev.BookingID != created.ID {
		t.Errorf("task booking id = %d, want %d", ev.BookingID, created.ID)
	}
	if ev.UserEmail != user.Email {
		t.Errorf("task email = %q, want %q", ev.UserEmail, user.Email)
	}
	if ev.ListTitle != listing.Title {
		t.Errorf("task title = %q, want %q", ev.ListTitle, listing.Title)
	}
}

func TestCreateBookingUnknownListingEnqueuesNothing(t *testing.T) {
	db := openTestDB(t)
	_, user := seedListingAndUser(t, db)
	queue := &fakeQueue{}
	svc := NewBookingService(db, queue)

	_, err := svc.Create(context.Background(), &models.Booking{
		ListingID:  9999,
		UserID:     user.ID,
		StartDate:  date("2024-01-01"),
		EndDate:    date("2024-01-05"),
		TotalPrice: 400.00,
	})
	if !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("err = %v, want ErrListingNotFound", err)
	}
	if len(queue.published) != 0 {
		t.Errorf("expected 0 tasks after failed create, got %d", len(queue.published))
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 bookings persisted, got %d", count)
	}
}

func TestBookingRoundTrip(t *testing.T) {
	db := openTestDB(t)
	listing, user := seedListingAndUser(t, db)
	svc := NewBookingService(db, &fakeQueue{})

	created, err := svc.Create(context.Background(), &models.Booking{
		ListingID:   listing.ID,
		UserID:      user.ID,
		StartDate:   date("2024-03-10"),
		EndDate:     date("2024-03-12"),
		TotalPrice:  200.50,
		IsConfirmed: true,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if got.TotalPrice != 200.50 || !got.IsConfirmed {
		t.Errorf("round trip mismatch: price=%v confirmed=%v", got.TotalPrice, got.IsConfirmed)
	}
	if !time.Time(got.StartDate).Equal(time.Time(created.StartDate)) {
		t.Errorf("start date mismatch: %v vs %v", got.StartDate, created.StartDate)
	}
	if got.Listing.Title != listing.Title || got.User.Username != user.Username {
		t.Errorf("derived fields mismatch: %q / %q", got.Listing.Title, got.User.Username)
	}
}

func TestDeleteListingCascades(t *testing.T) {
	db := openTestDB(t)
	listing, user := seedListingAndUser(t, db)
	bookingSvc := NewBookingService(db, &fakeQueue{})
	listingSvc := NewListingService(db)

	if _, err := bookingSvc.Create(context.Background(), &models.Booking{
		ListingID: listing.ID, UserID: user.ID,
		StartDate: date("2024-01-01"), EndDate: date("2024-01-05"), TotalPrice: 400,
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if err := db.Create(&models.Review{ListingID: listing.ID, UserID: user.ID, Rating: 5}).Error; err != nil {
		t.Fatalf("create review: %v", err)
	}

	if err := listingSvc.Delete(listing.ID); err != nil {
		t.Fatalf("delete listing: %v", err)
	}

	var bookings, reviews, listings int64
	db.Model(&models.Booking{}).Count(&bookings)
	db.Model(&models.Review{}).Count(&reviews)
	db.Model(&models.Listing{}).Count(&listings)
	if bookings != 0 || reviews != 0 || listings != 0 {
		t.Errorf("cascade failed: listings=%d bookings=%d reviews=%d", listings, bookings, reviews)
	}
}
