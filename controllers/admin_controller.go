// controllers/admin_controller.go
//
// Read-only administrative lists with search, filters and pagination
// (25 rows per page by default).
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel-backend/config"
	"travel-backend/models"
	"travel-backend/utils"
)

func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "25"))
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}
	return page, perPage
}

func paginate(q *gorm.DB, page, perPage int) *gorm.DB {
	return q.Offset((page - 1) * perPage).Limit(perPage)
}

// AdminListListings - GET /admin/listings?search=&city=&state=&page=&per_page=
func AdminListListings(c *gin.Context) {
	page, perPage := pageParams(c)

	q := config.DB.Model(&models.Listing{})
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("lower(city) = ?", strings.ToLower(city))
	}
	if state := strings.TrimSpace(c.Query("state")); state != "" {
		q = q.Where("lower(state) = ?", strings.ToLower(state))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"lower(title) LIKE ? OR lower(description) LIKE ? OR lower(address) LIKE ? OR lower(city) LIKE ? OR lower(state) LIKE ? OR zipcode LIKE ?",
			like, like, like, like, like, like,
		)
	}

	var total int64
	q.Count(&total)

	var listings []models.Listing
	if err := paginate(q, page, perPage).Order("list_date DESC").Find(&listings).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONPage(c, listings, page, perPage, total)
}

// AdminListBookings - GET /admin/bookings?listing_id=&user_id=&is_confirmed=&search=
func AdminListBookings(c *gin.Context) {
	page, perPage := pageParams(c)

	q := config.DB.Model(&models.Booking{}).
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Joins("JOIN users ON users.id = bookings.user_id")
	if v := c.Query("listing_id"); v != "" {
		q = q.Where("bookings.listing_id = ?", v)
	}
	if v := c.Query("user_id"); v != "" {
		q = q.Where("bookings.user_id = ?", v)
	}
	if v := c.Query("is_confirmed"); v != "" {
		confirmed, err := strconv.ParseBool(v)
		if err == nil {
			q = q.Where("bookings.is_confirmed = ?", confirmed)
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(listings.title) LIKE ? OR lower(users.username) LIKE ?", like, like)
	}

	var total int64
	q.Count(&total)

	var bookings []models.Booking
	err := paginate(q, page, perPage).
		Preload("Listing").Preload("User").
		Order("bookings.created_at DESC").Find(&bookings).Error
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	utils.JSONPage(c, out, page, perPage, total)
}

// AdminListReviews - GET /admin/reviews?listing_id=&user_id=&rating=&search=
func AdminListReviews(c *gin.Context) {
	page, perPage := pageParams(c)

	q := config.DB.Model(&models.Review{}).
		Joins("JOIN listings ON listings.id = reviews.listing_id").
		Joins("JOIN users ON users.id = reviews.user_id")
	if v := c.Query("listing_id"); v != "" {
		q = q.Where("reviews.listing_id = ?", v)
	}
	if v := c.Query("user_id"); v != "" {
		q = q.Where("reviews.user_id = ?", v)
	}
	if v := c.Query("rating"); v != "" {
		q = q.Where("reviews.rating = ?", v)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(listings.title) LIKE ? OR lower(users.username) LIKE ? OR lower(reviews.comment) LIKE ?", like, like, like)
	}

	var total int64
	q.Count(&total)

	var reviews []models.Review
	err := paginate(q, page, perPage).Order("reviews.created_at DESC").Find(&reviews).Error
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONPage(c, reviews, page, perPage, total)
}

// AdminListUsers - GET /admin/users?q=&page=&per_page=
func AdminListUsers(c *gin.Context) {
	page, perPage := pageParams(c)

	q := config.DB.Model(&models.User{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"lower(username) LIKE ? OR lower(email) LIKE ? OR lower(first_name) LIKE ? OR lower(last_name) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	q.Count(&total)

	var users []models.User
	if err := paginate(q, page, perPage).Order("date_joined DESC").Find(&users).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONPage(c, users, page, perPage, total)
}
