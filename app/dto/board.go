package dto

import "time"

type CreateBoardRequest struct {
	Title     string `json:"title"`
	IsPrivate bool   `json:"isPrivate"`
}

type UpdateBoardRequest struct {
	Title     *string `json:"title"`
	IsPrivate *bool   `json:"isPrivate"`
	Status    *string `json:"status"`
	AdminID   *uint   `json:"adminId"` // honored on the master route only
}

type BoardView struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	IsPrivate bool      `json:"isPrivate"`
	Status    string    `json:"status"`
	AdminID   uint      `json:"adminId"`
	CreatedAt time.Time `json:"createdAt"`
}

type MembershipView struct {
	BoardID  uint      `json:"boardId"`
	UserID   uint      `json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}

type JoinedBoardView struct {
	BoardView
	JoinedAt time.Time `json:"joinedAt"`
}

type AddMemberRequest struct {
	UserID uint `json:"userId"`
}

type MemberView struct {
	DisplayName string    `json:"displayName"`
	Age         int       `json:"age"`
	Country     string    `json:"country"`
	DateJoined  time.Time `json:"dateJoined"`
	IsAdmin     bool      `json:"isAdmin"`
}

type BoardMembers struct {
	BoardName string       `json:"boardName"`
	Members   []MemberView `json:"members"`
}

type BanRequest struct {
	Reason string `json:"reason"`
}

type BannedUserView struct {
	UserID    uint   `json:"userId"`
	UserName  string `json:"userName"`
	BoardID   uint   `json:"boardId"`
	BoardName string `json:"boardName"`
	Reason    string `json:"reason"`
}
