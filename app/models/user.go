package models

import "time"

// User is the display profile owned by an Account. Age is always derived
// from DateOfBirth at read time, never stored.
type User struct {
	ID          uint      `gorm:"primaryKey"`
	DisplayName string    `gorm:"size:50;not null"`
	DateOfBirth time.Time `gorm:"not null"`
	Country     string    `gorm:"size:64"`
	CreatedAt   time.Time
}
