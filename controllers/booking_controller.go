// controllers/booking_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"travel-backend/models"
	"travel-backend/services"
)

const dateLayout = "2006-01-02"

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	ListingID   uint    `json:"listing_id" binding:"required"`
	UserID      uint    `json:"user_id" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	TotalPrice  float64 `json:"total_price" binding:"required"`
	IsConfirmed bool    `json:"is_confirmed"`
}

type UpdateBookingRequest struct {
	ListingID   *uint    `json:"listing_id"`
	UserID      *uint    `json:"user_id"`
	StartDate   *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	TotalPrice  *float64 `json:"total_price"`
	IsConfirmed *bool    `json:"is_confirmed"`
}

// BookingResponse hides the raw foreign keys and exposes the derived
// listing title and username instead.
type BookingResponse struct {
	ID          uint      `json:"id"`
	ListTitle   string    `json:"list_title"`
	Username    string    `json:"username"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	TotalPrice  float64   `json:"total_price"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ListTitle:   b.Listing.Title,
		Username:    b.User.Username,
		StartDate:   time.Time(b.StartDate).Format(dateLayout),
		EndDate:     time.Time(b.EndDate).Format(dateLayout),
		TotalPrice:  b.TotalPrice,
		IsConfirmed: b.IsConfirmed,
		CreatedAt:   b.CreatedAt,
	}
}

func parseDate(s string) datatypes.Date {
	t, _ := time.Parse(dateLayout, s) // format already validated by binding
	return datatypes.Date(t)
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// GetBookings godoc
// @Summary List all bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} BookingResponse
// @Router /bookings [get]
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

// GetBookingByID godoc
// @Summary Retrieve one booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 404 {object} map[string]interface{}
// @Router /bookings/{id} [get]
func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// CreateBooking persists the booking and enqueues one confirmation task.
// The response never waits for the notification.
//
// CreateBooking godoc
// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} map[string]interface{}
// @Router /bookings [post]
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	booking := models.Booking{
		ListingID:   req.ListingID,
		UserID:      req.UserID,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		TotalPrice:  req.TotalPrice,
		IsConfirmed: req.IsConfirmed,
	}

	created, err := ctrl.BookingSvc.Create(c.Request.Context(), &booking)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/bookings/%d", created.ID))
	c.JSON(http.StatusCreated, toBookingResponse(created))
}

// UpdateBooking handles both PUT and PATCH; created_at never changes.
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.ListingID != nil {
		fields["listing_id"] = *req.ListingID
	}
	if req.UserID != nil {
		fields["user_id"] = *req.UserID
	}
	if req.StartDate != nil {
		fields["start_date"] = parseDate(*req.StartDate)
	}
	if req.EndDate != nil {
		fields["end_date"] = parseDate(*req.EndDate)
	}
	if req.TotalPrice != nil {
		fields["total_price"] = *req.TotalPrice
	}
	if req.IsConfirmed != nil {
		fields["is_confirmed"] = *req.IsConfirmed
	}

	booking, err := ctrl.BookingSvc.Update(id, fields)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /bookings/{id} [delete]
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
