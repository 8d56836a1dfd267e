package models

import "time"

type Message struct {
	ID       uint   `gorm:"primaryKey"`
	BoardID  uint   `gorm:"index;not null"`
	AuthorID uint   `gorm:"index;not null"`
	Text     string `gorm:"size:1000;not null"`
	// UserIDs is a legacy free-text tag list carried on create, never parsed.
	UserIDs   string  `gorm:"size:255"`
	CreatedAt time.Time
	Author    Account `gorm:"foreignKey:AuthorID;references:UserID"`
}
