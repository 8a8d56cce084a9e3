package model

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Fullname       string    `json:"fullname"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
