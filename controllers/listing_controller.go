// controllers/listing_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel-backend/models"
	"travel-backend/services"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateListingRequest struct {
	Title       string     `json:"title" binding:"required"`
	Address     string     `json:"address" binding:"required"`
	City        string     `json:"city" binding:"required"`
	State       string     `json:"state" binding:"required"`
	Zipcode     string     `json:"zipcode" binding:"required"`
	Description string     `json:"description"`
	Price       int        `json:"price" binding:"required"`
	Bedrooms    int        `json:"bedrooms" binding:"required"`
	Bathrooms   float64    `json:"bathrooms" binding:"required"`
	Garage      bool       `json:"garage"`
	Sqft        int        `json:"sqft" binding:"required"`
	LotSize     float64    `json:"lot_size" binding:"required"`
	PhotoMain   string     `json:"photo_main" binding:"required"`
	Photo1      string     `json:"photo_1"`
	Photo2      string     `json:"photo_2"`
	Photo3      string     `json:"photo_3"`
	Photo4      string     `json:"photo_4"`
	Photo5      string     `json:"photo_5"`
	Photo6      string     `json:"photo_6"`
	IsPublished *bool      `json:"is_published"`
	ListDate    *time.Time `json:"list_date"`
}

// UpdateListingRequest serves PUT and PATCH: only provided fields change.
type UpdateListingRequest struct {
	Title       *string    `json:"title"`
	Address     *string    `json:"address"`
	City        *string    `json:"city"`
	State       *string    `json:"state"`
	Zipcode     *string    `json:"zipcode"`
	Description *string    `json:"description"`
	Price       *int       `json:"price"`
	Bedrooms    *int       `json:"bedrooms"`
	Bathrooms   *float64   `json:"bathrooms"`
	Garage      *bool      `json:"garage"`
	Sqft        *int       `json:"sqft"`
	LotSize     *float64   `json:"lot_size"`
	PhotoMain   *string    `json:"photo_main"`
	Photo1      *string    `json:"photo_1"`
	Photo2      *string    `json:"photo_2"`
	Photo3      *string    `json:"photo_3"`
	Photo4      *string    `json:"photo_4"`
	Photo5      *string    `json:"photo_5"`
	Photo6      *string    `json:"photo_6"`
	IsPublished *bool      `json:"is_published"`
	ListDate    *time.Time `json:"list_date"`
}

func (r *UpdateListingRequest) fields() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Title != nil {
		out["title"] = *r.Title
	}
	if r.Address != nil {
		out["address"] = *r.Address
	}
	if r.City != nil {
		out["city"] = *r.City
	}
	if r.State != nil {
		out["state"] = *r.State
	}
	if r.Zipcode != nil {
		out["zipcode"] = *r.Zipcode
	}
	if r.Description != nil {
		out["description"] = *r.Description
	}
	if r.Price != nil {
		out["price"] = *r.Price
	}
	if r.Bedrooms != nil {
		out["bedrooms"] = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		out["bathrooms"] = *r.Bathrooms
	}
	if r.Garage != nil {
		out["garage"] = *r.Garage
	}
	if r.Sqft != nil {
		out["sqft"] = *r.Sqft
	}
	if r.LotSize != nil {
		out["lot_size"] = *r.LotSize
	}
	if r.PhotoMain != nil {
		out["photo_main"] = *r.PhotoMain
	}
	if r.Photo1 != nil {
		out["photo_1"] = *r.Photo1
	}
	if r.Photo2 != nil {
		out["photo_2"] = *r.Photo2
	}
	if r.Photo3 != nil {
		out["photo_3"] = *r.Photo3
	}
	if r.Photo4 != nil {
		out["photo_4"] = *r.Photo4
	}
	if r.Photo5 != nil {
		out["photo_5"] = *r.Photo5
	}
	if r.Photo6 != nil {
		out["photo_6"] = *r.Photo6
	}
	if r.IsPublished != nil {
		out["is_published"] = *r.IsPublished
	}
	if r.ListDate != nil {
		out["list_date"] = *r.ListDate
	}
	return out
}

// ---------------------------
// Controller
// ---------------------------

type ListingController struct {
	ListingSvc *services.ListingService
}

func NewListingController(svc *services.ListingService) *ListingController {
	return &ListingController{ListingSvc: svc}
}

// GetListings godoc
// @Summary List all listings
// @Tags listings
// @Produce json
// @Success 200 {array} models.Listing
// @Router /listings [get]
func (ctrl *ListingController) GetListings(c *gin.Context) {
	listings, err := ctrl.ListingSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetListingByID godoc
// @Summary Retrieve one listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} models.Listing
// @Failure 404 {object} map[string]interface{}
// @Router /listings/{id} [get]
func (ctrl *ListingController) GetListingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	listing, err := ctrl.ListingSvc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// CreateListing godoc
// @Summary Create a listing
// @Tags listings
// @Accept json
// @Produce json
// @Param listing body CreateListingRequest true "Listing"
// @Success 201 {object} models.Listing
// @Failure 400 {object} map[string]interface{}
// @Router /listings [post]
func (ctrl *ListingController) CreateListing(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	listing := models.Listing{
		Title:       req.Title,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zipcode:     req.Zipcode,
		Description: req.Description,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Garage:      req.Garage,
		Sqft:        req.Sqft,
		LotSize:     req.LotSize,
		PhotoMain:   req.PhotoMain,
		Photo1:      req.Photo1,
		Photo2:      req.Photo2,
		Photo3:      req.Photo3,
		Photo4:      req.Photo4,
		Photo5:      req.Photo5,
		Photo6:      req.Photo6,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		listing.IsPublished = *req.IsPublished
	}
	if req.ListDate != nil {
		listing.ListDate = *req.ListDate
	}

	if err := ctrl.ListingSvc.Create(&listing); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/listings/%d", listing.ID))
	c.JSON(http.StatusCreated, listing)
}

// UpdateListing handles both PUT and PATCH; only provided fields change.
func (ctrl *ListingController) UpdateListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	listing, err := ctrl.ListingSvc.Update(id, req.fields())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// DeleteListing godoc
// @Summary Delete a listing and everything referencing it
// @Tags listings
// @Param id path int true "Listing ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /listings/{id} [delete]
func (ctrl *ListingController) DeleteListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.ListingSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
