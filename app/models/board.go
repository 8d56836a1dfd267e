package models

import "time"

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool { return v == VisibilityPublic || v == VisibilityPrivate }

type Status string

const (
	StatusActive Status = "active"
	StatusFrozen Status = "frozen"
)

func (s Status) Valid() bool { return s == StatusActive || s == StatusFrozen }

// Board status and visibility are independent axes: a frozen board rejects
// new posts and non-member joins regardless of visibility.
type Board struct {
	ID         uint       `gorm:"primaryKey"`
	Name       string     `gorm:"size:100;not null"`
	AdminID    uint       `gorm:"index;not null"`
	Visibility Visibility `gorm:"size:16;not null;default:public"`
	Status     Status     `gorm:"size:16;not null;default:active"`
	CreatedAt  time.Time
}
