package maintenance

import "time"

// Request statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Request represents a maintenance request raised by a tenant for the house
// they occupy
type Request struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	HouseID     string    `json:"house_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RequestType string    `json:"request_type"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RequestDetail is a request joined with tenant and house columns for the
// admin listing
type RequestDetail struct {
	Request
	TenantName string `json:"tenant_name"`
	RoomName   string `json:"room_name"`
}
