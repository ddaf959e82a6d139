package models

import (
	"time"

	"gorm.io/gorm"
)

// Listing is a rentable property. Deleting a listing removes its bookings
// and reviews (see ListingService.Delete).
type Listing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:200" json:"title"`
	Address     string `gorm:"size:200" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	State       string `gorm:"size:100" json:"state"`
	Zipcode     string `gorm:"size:20" json:"zipcode"`
	Description string `gorm:"type:text" json:"description"`

	Price     int     `json:"price"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `gorm:"type:decimal(2,1)" json:"bathrooms"`
	Garage    bool    `gorm:"default:false" json:"garage"`
	Sqft      int     `json:"sqft"`
	LotSize   float64 `gorm:"column:lot_size;type:decimal(5,2)" json:"lot_size"`

	PhotoMain string `gorm:"column:photo_main;size:255" json:"photo_main"`
	Photo1    string `gorm:"column:photo_1;size:255" json:"photo_1"`
	Photo2    string `gorm:"column:photo_2;size:255" json:"photo_2"`
	Photo3    string `gorm:"column:photo_3;size:255" json:"photo_3"`
	Photo4    string `gorm:"column:photo_4;size:255" json:"photo_4"`
	Photo5    string `gorm:"column:photo_5;size:255" json:"photo_5"`
	Photo6    string `gorm:"column:photo_6;size:255" json:"photo_6"`

	IsPublished bool      `gorm:"column:is_published;default:true" json:"is_published"`
	ListDate    time.Time `gorm:"column:list_date" json:"list_date"`
}

// BeforeCreate stamps list_date when the caller didn't provide one.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ListDate.IsZero() {
		l.ListDate = time.Now()
	}
	return nil
}
