package profile

import "github.com/amutiso/kwakamande/internal/assignment"

// UpdateProfileRequest represents the request body for a tenant updating
// their own contact details
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone,omitempty"`
}

// ProfileResponse represents the response for a single profile
type ProfileResponse struct {
	ID        string  `json:"id"`
	Role      string  `json:"role"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// TenantResponse is a tenant profile with their current assignment resolved
type TenantResponse struct {
	*ProfileResponse
	Assignment *assignment.AssignmentResponse `json:"assignment,omitempty"`
}

// ToResponse converts a Profile model to a ProfileResponse DTO
func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Role:      p.Role,
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
