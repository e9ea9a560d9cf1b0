package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amutiso/kwakamande/internal/profile"
	mw "github.com/amutiso/kwakamande/pkg/middleware"
)

// Common errors
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountRemoved     = errors.New("account has been removed")
)

// Service handles authentication business logic
type Service struct {
	profileRepo *profile.Repository
	jwtSecret   string
	tokenTTL    time.Duration
}

// NewService creates a new auth service with dependencies injected
func NewService(profileRepo *profile.Repository, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{profileRepo: profileRepo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a tenant account. New signups are always tenants; admin
// accounts are provisioned directly in the database.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	existing, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p, err := s.profileRepo.Create(ctx, uuid.NewString(), profile.RoleTenant, req.FullName, req.Email, string(hash), req.Phone)
	if err != nil {
		return nil, err
	}

	return s.respond(p)
}

// Login verifies credentials and issues a token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	p, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrInvalidCredentials
	}
	if p.DeletedAt != nil {
		return nil, ErrAccountRemoved
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(p)
}

func (s *Service) respond(p *profile.Profile) (*AuthResponse, error) {
	token, err := mw.GenerateToken(s.jwtSecret, p.ID, p.Role, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{Token: token, Profile: p.ToResponse()}, nil
}
