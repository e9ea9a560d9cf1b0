package auth

import "github.com/amutiso/kwakamande/internal/profile"

// RegisterRequest represents the request to create a tenant account
type RegisterRequest struct {
	FullName string  `json:"full_name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the request to sign in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful register or login
type AuthResponse struct {
	Token   string                   `json:"token"`
	Profile *profile.ProfileResponse `json:"profile"`
}
