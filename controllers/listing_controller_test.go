package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel-backend/config"
	"travel-backend/models"
	"travel-backend/services"
)

func buildListingRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)

	lc := NewListingController(services.NewListingService(db))
	r := gin.New()
	r.GET("/api/listings", lc.GetListings)
	r.POST("/api/listings", lc.CreateListing)
	r.GET("/api/listings/:id", lc.GetListingByID)
	r.PATCH("/api/listings/:id", lc.UpdateListing)
	r.DELETE("/api/listings/:id", lc.DeleteListing)
	return r, db
}

const validListingJSON = `{
	"title": "Downtown Loft",
	"address": "55 Main St",
	"city": "Austin",
	"state": "TX",
	"zipcode": "78701",
	"description": "Bright corner unit",
	"price": 250000,
	"bedrooms": 2,
	"bathrooms": 1.5,
	"garage": true,
	"sqft": 1200,
	"lot_size": 0.15,
	"photo_main": "photos/loft.jpg"
}`

func TestListingCreateRoundTrip(t *testing.T) {
	r, _ := buildListingRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(validListingJSON))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", resp.Code, resp.Body.String())
	}
	if resp.Header().Get("Location") != "/api/listings/1" {
		t.Errorf("Location = %q", resp.Header().Get("Location"))
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/listings/1", nil)
	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp2.Code)
	}

	var got models.Listing
	if err := json.Unmarshal(resp2.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != "Downtown Loft" || got.Price != 250000 || got.Bathrooms != 1.5 || !got.Garage {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.IsPublished {
		t.Error("is_published should default to true")
	}
	if got.ListDate.IsZero() {
		t.Error("list_date should default to now")
	}
}

func TestListingCreateMissingFields(t *testing.T) {
	r, db := buildListingRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(`{"title":"No Address"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	var body struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "error.validation" {
		t.Errorf("code = %q, want error.validation", body.Error.Code)
	}
	if len(body.Error.Fields) == 0 {
		t.Error("expected field-level messages")
	}

	var count int64
	db.Model(&models.Listing{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no listings persisted, got %d", count)
	}
}

func TestListingPatchUpdatesOnlyProvidedFields(t *testing.T) {
	r, _ := buildListingRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(validListingJSON))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	patch := httptest.NewRequest(http.MethodPatch, "/api/listings/1", strings.NewReader(`{"price":199000}`))
	patch.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, patch)
	if resp.Code != http.StatusOK {
		t.Fatalf("patch status = %d, want 200; body = %s", resp.Code, resp.Body.String())
	}

	var got models.Listing
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Price != 199000 {
		t.Errorf("price = %d, want 199000", got.Price)
	}
	if got.Title != "Downtown Loft" {
		t.Errorf("title changed unexpectedly: %q", got.Title)
	}
}

func TestAdminListListingsPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	config.DB = db

	for i := 0; i < 30; i++ {
		l := models.Listing{Title: "Unit", Address: "1 St", City: "Austin", State: "TX",
			Zipcode: "78701", Price: 1000, Bedrooms: 1, Bathrooms: 1, Sqft: 500,
			LotSize: 0.1, PhotoMain: "photos/x.jpg"}
		if err := db.Create(&l).Error; err != nil {
			t.Fatalf("seed listing %d: %v", i, err)
		}
	}

	r := gin.New()
	r.GET("/admin/listings", AdminListListings)

	req := httptest.NewRequest(http.MethodGet, "/admin/listings", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var body struct {
		Data []models.Listing `json:"data"`
		Meta struct {
			Page    int   `json:"page"`
			PerPage int   `json:"per_page"`
			Total   int64 `json:"total"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 25 {
		t.Errorf("page size = %d, want 25", len(body.Data))
	}
	if body.Meta.Total != 30 {
		t.Errorf("total = %d, want 30", body.Meta.Total)
	}
}
