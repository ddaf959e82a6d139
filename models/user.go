package models

import "time"

// User is referenced by bookings and reviews. There is no user CRUD API;
// rows come from the seeder (or an external account system in production).
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:150" json:"username"`
	Email      string    `gorm:"size:254" json:"email"`
	Password   string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	FirstName  string    `gorm:"size:150" json:"first_name"`
	LastName   string    `gorm:"size:150" json:"last_name"`
	DateJoined time.Time `gorm:"column:date_joined;autoCreateTime" json:"date_joined"`
}
