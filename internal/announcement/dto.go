package announcement

// CreateAnnouncementRequest represents an admin posting a notice
type CreateAnnouncementRequest struct {
	Title          string `json:"title" validate:"required,min=3,max=200"`
	Content        string `json:"content" validate:"required"`
	TargetAudience string `json:"target_audience,omitempty"`
}

// SetActiveRequest represents toggling an announcement's visibility
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}
