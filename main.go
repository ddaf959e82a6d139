package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/mq"
	"travel-backend/routes"
	"travel-backend/services"
)

// @title Travel Listings API
// @version 1.0
// @description API documentation for the travel listing platform
// @BasePath /api
func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	log.Println("database connection established, migrations applied")

	// Task queue: fall back to a logging no-op queue when the broker is
	// down so the API still serves requests.
	var tasks mq.TaskQueue
	pub, err := mq.NewPublisher(cfg.RabbitURL, cfg.TaskExchange)
	if err != nil {
		log.Printf("rabbitmq unavailable (%v); notification tasks will be dropped", err)
		tasks = mq.NopQueue{}
	} else {
		defer pub.Close()
		tasks = pub
	}

	// Initialize services
	listingService := services.NewListingService(db)
	bookingService := services.NewBookingService(db, tasks)
	reviewService := services.NewReviewService(db)

	// Initialize controllers
	listingController := controllers.NewListingController(listingService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)

	router := routes.SetupRouter(listingController, bookingController, reviewController, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal, then shut down with a timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
