package assignment

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrNoActiveAssignment = errors.New("no active assignment for tenant")
	ErrHouseNotFound      = errors.New("house not found")
	ErrHouseOccupied      = errors.New("house is already occupied")
)

// Service handles assignment business logic
type Service struct {
	repo *Repository
}

// NewService creates a new assignment service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Assign gives a vacant house to a tenant. Any prior active assignment is
// deactivated and its house freed as part of the same write.
func (s *Service) Assign(ctx context.Context, tenantID, houseID, assignedBy string) (*Assignment, error) {
	return s.repo.Assign(ctx, tenantID, houseID, assignedBy)
}

// Unassign releases the tenant's current house
func (s *Service) Unassign(ctx context.Context, tenantID string) (*Assignment, error) {
	a, err := s.repo.Unassign(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoActiveAssignment
	}
	return a, nil
}

// Resolve returns the tenant's current house and assignment
func (s *Service) Resolve(ctx context.Context, tenantID string) (*Assignment, error) {
	a, err := s.repo.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoActiveAssignment
	}
	return a, nil
}

// ListActiveDetails returns every active assignment with tenant and house
// details joined
func (s *Service) ListActiveDetails(ctx context.Context) ([]*ActiveDetail, error) {
	return s.repo.ListActiveDetails(ctx)
}
