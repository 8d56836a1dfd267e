package dto

import "time"

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	DateOfBirth string `json:"dateOfBirth"`
	Country     string `json:"country"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserProfile struct {
	UserID       uint      `json:"userId"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	DisplayName  string    `json:"displayName"`
	Age          int       `json:"age"`
	Country      string    `json:"country"`
	DateJoined   time.Time `json:"dateJoined"`
	IsBoardAdmin bool      `json:"isBoardAdmin"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}
