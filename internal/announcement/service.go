package announcement

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInvalidAudience      = errors.New("target_audience must be 'all' or 'tenants'")
)

// Service handles announcement business logic
type Service struct {
	repo *Repository
}

// NewService creates a new announcement service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create posts a new announcement, visible immediately
func (s *Service) Create(ctx context.Context, adminID string, req *CreateAnnouncementRequest) (*Announcement, error) {
	if req.TargetAudience == "" {
		req.TargetAudience = AudienceAll
	}
	if req.TargetAudience != AudienceAll && req.TargetAudience != AudienceTenants {
		return nil, ErrInvalidAudience
	}

	return s.repo.Create(ctx, adminID, req)
}

// ListForTenants returns only visible announcements
func (s *Service) ListForTenants(ctx context.Context) ([]*Announcement, error) {
	return s.repo.List(ctx, true)
}

// ListAll returns every announcement including hidden ones
func (s *Service) ListAll(ctx context.Context) ([]*Announcement, error) {
	return s.repo.List(ctx, false)
}

// SetActive toggles an announcement's visibility
func (s *Service) SetActive(ctx context.Context, id string, isActive bool) (*Announcement, error) {
	a, err := s.repo.SetActive(ctx, id, isActive)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAnnouncementNotFound
	}
	return a, nil
}

// Delete removes an announcement permanently
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
