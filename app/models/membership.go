package models

import "time"

type Membership struct {
	ID       uint `gorm:"primaryKey"`
	BoardID  uint `gorm:"uniqueIndex:idx_membership_board_user;not null"`
	UserID   uint `gorm:"uniqueIndex:idx_membership_board_user;not null"`
	JoinedAt time.Time
	Board    Board   `gorm:"foreignKey:BoardID"`
	Account  Account `gorm:"foreignKey:UserID;references:UserID"`
}
