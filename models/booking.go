package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking reserves a listing for a user over a date range. CreatedAt is set
// once on insert and never updated afterwards.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ListingID uint `gorm:"index;column:listing_id" json:"listing_id"`
	UserID    uint `gorm:"index;column:user_id" json:"user_id"`

	StartDate   datatypes.Date `gorm:"column:start_date" json:"-"`
	EndDate     datatypes.Date `gorm:"column:end_date" json:"-"`
	TotalPrice  float64        `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`
	IsConfirmed bool           `gorm:"column:is_confirmed;default:false" json:"is_confirmed"`
	CreatedAt   time.Time      `gorm:"<-:create" json:"created_at"`

	Listing Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
