package assignment

import "time"

// Assignment represents a tenant-to-house assignment. At most one row per
// tenant has IsActive set; deactivated rows are kept as history.
type Assignment struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	HouseID    string    `json:"house_id"`
	AssignedBy *string   `json:"assigned_by,omitempty"`
	AssignedAt time.Time `json:"assigned_at"`
	IsActive   bool      `json:"is_active"`

	// Populated via JOIN
	House *AssignedHouse `json:"house,omitempty"`
}

// AssignedHouse carries the house columns joined onto an assignment
type AssignedHouse struct {
	ID       string `json:"id"`
	Floor    string `json:"floor"`
	Section  string `json:"section"`
	RoomName string `json:"room_name"`
	RoomType string `json:"room_type"`
	Price    int64  `json:"price"`
}

// ActiveDetail is one active assignment joined with tenant and house details,
// as consumed by the monthly collection views
type ActiveDetail struct {
	TenantID    string `json:"tenant_id"`
	TenantName  string `json:"tenant_name"`
	TenantEmail string `json:"tenant_email"`
	HouseID     string `json:"house_id"`
	RoomName    string `json:"room_name"`
	Price       int64  `json:"price"`
}
