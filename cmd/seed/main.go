// Command seed populates the database with development fixtures.
//
//	go run ./cmd/seed -listings 20 -users 5 -clear
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"travel-backend/config"
	"travel-backend/seed"
)

func main() {
	numListings := flag.Int("listings", 20, "number of fake listings to create")
	numUsers := flag.Int("users", 5, "number of fake users to create (if not enough exist)")
	clear := flag.Bool("clear", false, "clear existing listings, bookings and reviews before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	log.Println("starting database seeding...")
	seeder := seed.New(config.DB)
	if err := seeder.Run(seed.Options{
		NumListings: *numListings,
		NumUsers:    *numUsers,
		Clear:       *clear,
	}); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("database seeding complete")
}
