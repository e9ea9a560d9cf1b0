package maintenance

// CreateRequestRequest represents a tenant raising a maintenance request
type CreateRequestRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required"`
	RequestType string `json:"request_type" validate:"required"`
	Priority    string `json:"priority,omitempty"`
}

// UpdateStatusRequest represents an admin moving a request through its
// lifecycle
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}
