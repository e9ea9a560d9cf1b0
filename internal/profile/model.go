package profile

import "time"

// Roles recognised by the portal
const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

// Profile represents a portal user (admin or tenant)
type Profile struct {
	ID           string     `json:"id"`
	Role         string     `json:"role"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	PasswordHash string     `json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
