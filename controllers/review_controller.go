// controllers/review_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/models"
	"travel-backend/services"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateReviewRequest struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type UpdateReviewRequest struct {
	ListingID *uint   `json:"listing_id"`
	UserID    *uint   `json:"user_id"`
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment   *string `json:"comment"`
}

// ---------------------------
// Controller
// ---------------------------

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

// GetReviews godoc
// @Summary List all reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} models.Review
// @Router /reviews [get]
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := ctrl.ReviewSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReviewByID godoc
// @Summary Retrieve one review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Review
// @Failure 404 {object} map[string]interface{}
// @Router /reviews/{id} [get]
func (ctrl *ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	review, err := ctrl.ReviewSvc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// CreateReview godoc
// @Summary Create a review (rating must be 1-5)
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]interface{}
// @Router /reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	review := models.Review{
		ListingID: req.ListingID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := ctrl.ReviewSvc.Create(&review); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/reviews/%d", review.ID))
	c.JSON(http.StatusCreated, review)
}

// UpdateReview handles both PUT and PATCH.
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateReviewRequest
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
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Comment != nil {
		fields["comment"] = *req.Comment
	}

	review, err := ctrl.ReviewSvc.Update(id, fields)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Param id path int true "Review ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /reviews/{id} [delete]
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.ReviewSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
