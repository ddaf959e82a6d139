package models

import "time"

// Review is a user's 1-5 star rating of a listing. The range is enforced at
// the request layer, not by the database.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ListingID uint `gorm:"index;column:listing_id" json:"listing_id"`
	UserID    uint `gorm:"index;column:user_id" json:"user_id"`

	Rating    int       `json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`

	Listing Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
