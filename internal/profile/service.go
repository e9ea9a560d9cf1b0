package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/amutiso/kwakamande/internal/assignment"
)

// Common errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileDeleted  = errors.New("profile has been removed")
)

// Service handles profile business logic
type Service struct {
	repo           *Repository
	assignmentRepo *assignment.Repository
}

// NewService creates a new profile service with repository dependencies injected
func NewService(repo *Repository, assignmentRepo *assignment.Repository) *Service {
	return &Service{repo: repo, assignmentRepo: assignmentRepo}
}

// Get returns a single profile by ID
func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	if p.DeletedAt != nil {
		return nil, ErrProfileDeleted
	}
	return p, nil
}

// ListTenants returns every active tenant with their current assignment
// attached where one exists
func (s *Service) ListTenants(ctx context.Context) ([]*TenantResponse, error) {
	profiles, err := s.repo.ListActiveTenants(ctx)
	if err != nil {
		return nil, err
	}

	tenants := make([]*TenantResponse, 0, len(profiles))
	for _, p := range profiles {
		t := &TenantResponse{ProfileResponse: p.ToResponse()}

		a, err := s.assignmentRepo.GetActiveByTenant(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assignment for tenant %s: %w", p.ID, err)
		}
		if a != nil {
			t.Assignment = a.ToResponse()
		}

		tenants = append(tenants, t)
	}

	return tenants, nil
}

// UpdateContact changes a profile's name or phone
func (s *Service) UpdateContact(ctx context.Context, id string, req *UpdateProfileRequest) (*Profile, error) {
	p, err := s.repo.UpdateContact(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// RemoveTenant soft deletes a tenant, releasing their house first if they
// hold one
func (s *Service) RemoveTenant(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || p.DeletedAt != nil {
		return ErrProfileNotFound
	}
	if p.Role != RoleTenant {
		return ErrProfileNotFound
	}

	if _, err := s.assignmentRepo.Unassign(ctx, id); err != nil {
		return fmt.Errorf("failed to release tenant's house: %w", err)
	}

	return s.repo.SoftDelete(ctx, id)
}
