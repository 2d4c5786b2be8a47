package model

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Booking dates and times are plain strings compared lexicographically,
// so ISO 8601 values ("2024-01-02", "09:00") sort in calendar order.
type Booking struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Service   string    `json:"service"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
