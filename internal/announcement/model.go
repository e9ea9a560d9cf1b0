package announcement

import "time"

// Audiences an announcement can target
const (
	AudienceAll     = "all"
	AudienceTenants = "tenants"
)

// Announcement represents a notice posted by an admin
type Announcement struct {
	ID             string    `json:"id"`
	AdminID        string    `json:"admin_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	TargetAudience string    `json:"target_audience"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
