package dto

import "time"

type AccountSummary struct {
	UserID         uint           `json:"userId"`
	Email          string         `json:"email"`
	Role           string         `json:"role"`
	DisplayName    string         `json:"displayName"`
	Country        string         `json:"country"`
	DateOfBirth    time.Time      `json:"dateOfBirth"`
	IsBoardAdmin   bool           `json:"isBoardAdmin"`
	BoardCount     int            `json:"boardCount"`
	Boards         []BoardView    `json:"boards"`
	RecentMessages []MasterMessage `json:"recentMessages"`
}

type MasterMessage struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	BoardID   uint      `json:"boardId"`
	Timestamp time.Time `json:"timestamp"`
}

type UpdateAccountRequest struct {
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email"`
	Country     *string `json:"country"`
	DateOfBirth *string `json:"dateOfBirth"`
	Role        *string `json:"role"`
}
