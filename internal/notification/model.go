package notification

import "time"

// Notification kinds
const (
	KindRentReminder = "rent_reminder"
	KindGeneral      = "general"
)

// Notification represents an in-app message delivered to one user
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
