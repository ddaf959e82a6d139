package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travel-backend/models"
	"travel-backend/services"
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
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// buildReviewRouter creates a minimal gin app with just the review routes.
func buildReviewRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)

	listing := models.Listing{Title: "Cabin", Address: "2 Forest Ln", City: "Bend",
		State: "OR", Zipcode: "97701", Price: 1500, Bedrooms: 2, Bathrooms: 1.0,
		Sqft: 900, LotSize: 0.2, PhotoMain: "photos/cabin.jpg"}
	if err := db.Create(&listing).Error; err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	user := models.User{Username: "reviewer", Email: "reviewer@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	rc := NewReviewController(services.NewReviewService(db))
	r := gin.New()
	r.POST("/api/reviews", rc.CreateReview)
	r.GET("/api/reviews/:id", rc.GetReviewByID)
	return r, db
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	r, db := buildReviewRouter(t)

	for _, rating := range []string{"0", "6", "-1"} {
		body := `{"listing_id":1,"user_id":1,"rating":` + rating + `}`
		req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Errorf("rating %s: status = %d, want 400", rating, resp.Code)
		}
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no reviews persisted, got %d", count)
	}
}

func TestCreateReviewRoundTrip(t *testing.T) {
	r, _ := buildReviewRouter(t)

	body := `{"listing_id":1,"user_id":1,"rating":4,"comment":"great stay"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", resp.Code, resp.Body.String())
	}
	location := resp.Header().Get("Location")
	if location == "" {
		t.Error("expected Location header on create")
	}

	var created models.Review
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/reviews/1", nil)
	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp2.Code)
	}
	var got models.Review
	if err := json.Unmarshal(resp2.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if got.Rating != 4 || got.Comment != "great stay" || got.ListingID != created.ListingID {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestCreateReviewUnknownListing(t *testing.T) {
	r, db := buildReviewRouter(t)

	body := `{"listing_id":42,"user_id":1,"rating":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no reviews persisted, got %d", count)
	}
}
