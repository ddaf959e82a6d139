// Package seed populates the schema with randomized development fixtures:
// listings, then 0-3 bookings per listing, then 0-1 review per booking.
package seed

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-backend/models"
)

type Options struct {
	NumListings int
	NumUsers    int
	Clear       bool
}

type Seeder struct {
	DB    *gorm.DB
	Faker *gofakeit.Faker
}

func New(db *gorm.DB) *Seeder {
	return &Seeder{DB: db, Faker: gofakeit.New(0)}
}

// BookingTotal is the illustrative fixture pricing: a thirtieth of the
// listing price per night, rounded to cents. Not billing-correct.
func BookingTotal(price, days int) float64 {
	return math.Round(float64(price)/30*float64(days)*100) / 100
}

// Run optionally clears existing rows, then generates all fixtures inside a
// single transaction.
func (s *Seeder) Run(opts Options) error {
	if opts.Clear {
		log.Println("clearing existing data...")
		if err := s.clear(); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		users, err := s.ensureUsers(tx, opts.NumUsers)
		if err != nil {
			return err
		}

		listings, err := s.createListings(tx, opts.NumListings)
		if err != nil {
			return err
		}
		log.Printf("%d listings created", len(listings))

		bookings, err := s.createBookings(tx, listings, users)
		if err != nil {
			return err
		}
		log.Printf("%d bookings created", len(bookings))

		reviews, err := s.createReviews(tx, bookings)
		if err != nil {
			return err
		}
		log.Printf("%d reviews created", reviews)
		return nil
	})
}

// clear purges children before parents so FK constraints hold.
func (s *Seeder) clear() error {
	for _, model := range []interface{}{&models.Review{}, &models.Booking{}, &models.Listing{}} {
		if err := s.DB.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) ensureUsers(tx *gorm.DB, want int) ([]models.User, error) {
	var count int64
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if int(count) < want {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		missing := want - int(count)
		log.Printf("creating %d additional users...", missing)
		for i := 0; i < missing; i++ {
			user := models.User{
				Username:  fmt.Sprintf("%s%d", s.Faker.Username(), s.Faker.Number(1, 1000)),
				Email:     s.Faker.Email(),
				Password:  string(hash),
				FirstName: s.Faker.FirstName(),
				LastName:  s.Faker.LastName(),
			}
			if err := tx.Create(&user).Error; err != nil {
				return nil, fmt.Errorf("create user: %w", err)
			}
		}
	}

	var users []models.User
	if err := tx.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Seeder) createListings(tx *gorm.DB, n int) ([]models.Listing, error) {
	now := time.Now()
	listings := make([]models.Listing, 0, n)
	for i := 0; i < n; i++ {
		listing := models.Listing{
			Title:       s.Faker.Sentence(6),
			Address:     s.Faker.Street(),
			City:        s.Faker.City(),
			State:       s.Faker.StateAbr(),
			Zipcode:     s.Faker.Zip(),
			Description: s.Faker.Paragraph(1, 5, 8, " "),
			Price:       s.Faker.Number(100000, 1000000),
			Bedrooms:    s.Faker.Number(1, 5),
			Bathrooms:   math.Round(s.Faker.Float64Range(1.0, 4.0)*10) / 10,
			Garage:      s.Faker.Bool(),
			Sqft:        s.Faker.Number(800, 3000),
			LotSize:     math.Round(s.Faker.Float64Range(0.1, 1.5)*100) / 100,
			PhotoMain: fmt.Sprintf("photos/%d/%02d/%02d/main_%s.jpg",
				now.Year(), now.Month(), now.Day(), uuid.NewString()),
			IsPublished: s.Faker.Bool(),
			ListDate:    s.Faker.DateRange(now.AddDate(-2, 0, 0), now),
		}
		if err := tx.Create(&listing).Error; err != nil {
			return nil, fmt.Errorf("create listing: %w", err)
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (s *Seeder) createBookings(tx *gorm.DB, listings []models.Listing, users []models.User) ([]models.Booking, error) {
	if len(users) == 0 {
		return nil, nil
	}
	now := time.Now()
	var bookings []models.Booking
	for _, listing := range listings {
		// 70% of listings receive at least one booking
		if s.Faker.Float64Range(0, 1) >= 0.7 {
			continue
		}
		for i := 0; i < s.Faker.Number(1, 3); i++ {
			user := users[s.Faker.Number(0, len(users)-1)]
			start := s.Faker.DateRange(now.AddDate(-1, 0, 0), now.AddDate(0, 6, 0)).Truncate(24 * time.Hour)
			days := s.Faker.Number(2, 14)
			end := start.AddDate(0, 0, days)

			createdAt := now
			if start.Before(now) {
				createdAt = s.Faker.DateRange(start, now)
			}

			booking := models.Booking{
				ListingID:   listing.ID,
				UserID:      user.ID,
				StartDate:   datatypes.Date(start),
				EndDate:     datatypes.Date(end),
				TotalPrice:  BookingTotal(listing.Price, days),
				IsConfirmed: s.Faker.Bool(),
				CreatedAt:   createdAt,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return nil, fmt.Errorf("create booking: %w", err)
			}
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (s *Seeder) createReviews(tx *gorm.DB, bookings []models.Booking) (int, error) {
	now := time.Now()
	created := 0
	for _, booking := range bookings {
		// 80% of bookings receive one review
		if s.Faker.Float64Range(0, 1) >= 0.8 {
			continue
		}
		comment := ""
		if s.Faker.Float64Range(0, 1) < 0.7 {
			comment = s.Faker.Paragraph(1, 2, 8, " ")
		}

		createdAt := now
		if end := time.Time(booking.EndDate); end.Before(now) {
			createdAt = s.Faker.DateRange(end, now)
		}

		review := models.Review{
			ListingID: booking.ListingID,
			UserID:    booking.UserID,
			Rating:    s.Faker.Number(1, 5),
			Comment:   comment,
			CreatedAt: createdAt,
		}
		if err := tx.Create(&review).Error; err != nil {
			return created, fmt.Errorf("create review: %w", err)
		}
		created++
	}
	return created, nil
}
