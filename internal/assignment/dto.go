package assignment

// AssignRequest represents the request to assign a house to a tenant
type AssignRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	HouseID  string `json:"house_id" validate:"required"`
}

// AssignmentResponse represents the response for an assignment
type AssignmentResponse struct {
	ID         string         `json:"id"`
	TenantID   string         `json:"tenant_id"`
	HouseID    string         `json:"house_id"`
	AssignedAt string         `json:"assigned_at"`
	IsActive   bool           `json:"is_active"`
	House      *AssignedHouse `json:"house,omitempty"`
}

// ToResponse converts an Assignment model to an AssignmentResponse DTO
func (a *Assignment) ToResponse() *AssignmentResponse {
	return &AssignmentResponse{
		ID:         a.ID,
		TenantID:   a.TenantID,
		HouseID:    a.HouseID,
		AssignedAt: a.AssignedAt.Format("2006-01-02T15:04:05Z"),
		IsActive:   a.IsActive,
		House:      a.House,
	}
}
