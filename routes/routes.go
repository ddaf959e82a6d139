package routes

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-backend/controllers"
	_ "travel-backend/docs"
	"travel-backend/middleware"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// useJSONFieldNames makes validator report errors under json tag names, so
// the field-level error map matches what clients actually sent.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

const redocPage = `<!doctype html>
<html>
<head><title>API Reference</title><meta charset="utf-8"></head>
<body>
<redoc spec-url="/swagger/doc.json"></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`

// SetupRouter wires the controller instances into the route table.
func SetupRouter(
	lc *controllers.ListingController,
	bc *controllers.BookingController,
	rc *controllers.ReviewController,
	corsOrigins string,
) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API documentation, generated from the handler annotations
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/redoc", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(redocPage))
	})

	api := r.Group("/api")
	{
		listings := api.Group("/listings")
		{
			listings.GET("", lc.GetListings)
			listings.POST("", lc.CreateListing)
			listings.GET("/:id", lc.GetListingByID)
			listings.PUT("/:id", lc.UpdateListing)
			listings.PATCH("/:id", lc.UpdateListing)
			listings.DELETE("/:id", lc.DeleteListing)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.PATCH("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", rc.GetReviews)
			reviews.POST("", rc.CreateReview)
			reviews.GET("/:id", rc.GetReviewByID)
			reviews.PUT("/:id", rc.UpdateReview)
			reviews.PATCH("/:id", rc.UpdateReview)
			reviews.DELETE("/:id", rc.DeleteReview)
		}
	}

	admin := r.Group("/admin")
	{
		admin.GET("/listings", controllers.AdminListListings)
		admin.GET("/bookings", controllers.AdminListBookings)
		admin.GET("/reviews", controllers.AdminListReviews)
		admin.GET("/users", controllers.AdminListUsers)
	}

	return r
}
