package models

import "time"

// Ban overrides membership and visibility: while a row exists the user may
// not view, post or join, and a successful ban removes any membership in the
// same transaction.
type Ban struct {
	ID        uint   `gorm:"primaryKey"`
	BoardID   uint   `gorm:"uniqueIndex:idx_ban_board_user;not null"`
	UserID    uint   `gorm:"uniqueIndex:idx_ban_board_user;not null"`
	Reason    string `gorm:"size:255"`
	CreatedAt time.Time
}
