package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleMaster Role = "master"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleMaster }

// Account shares its primary key with the User profile it owns: UserID is
// both the identity used everywhere (tokens, memberships, bans, board admin)
// and the foreign key to the profile row.
type Account struct {
	UserID       uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         Role   `gorm:"size:32;not null;default:user"`
	User         User
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
