package maintenance

import (
	"context"
	"errors"

	"github.com/amutiso/kwakamande/internal/assignment"
)

// Common errors
var (
	ErrRequestNotFound    = errors.New("maintenance request not found")
	ErrNoActiveAssignment = errors.New("tenant has no active house assignment")
	ErrNotPending         = errors.New("only pending requests can be cancelled")
	ErrNotOwner           = errors.New("request belongs to another tenant")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// Service handles maintenance business logic
type Service struct {
	repo           *Repository
	assignmentRepo *assignment.Repository
}

// NewService creates a new maintenance service with repository dependencies injected
func NewService(repo *Repository, assignmentRepo *assignment.Repository) *Service {
	return &Service{repo: repo, assignmentRepo: assignmentRepo}
}

// Create raises a request against the house the tenant currently occupies
func (s *Service) Create(ctx context.Context, tenantID string, req *CreateRequestRequest) (*Request, error) {
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if !validPriorities[req.Priority] {
		return nil, ErrInvalidPriority
	}

	a, err := s.assignmentRepo.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoActiveAssignment
	}

	return s.repo.Create(ctx, tenantID, a.HouseID, req)
}

// ListMine returns the tenant's own requests, newest first
func (s *Service) ListMine(ctx context.Context, tenantID string) ([]*Request, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

// Cancel lets a tenant withdraw their own request while it is still pending
func (s *Service) Cancel(ctx context.Context, tenantID, requestID string) (*Request, error) {
	m, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrRequestNotFound
	}
	if m.TenantID != tenantID {
		return nil, ErrNotOwner
	}
	if m.Status != StatusPending {
		return nil, ErrNotPending
	}

	return s.repo.UpdateStatus(ctx, requestID, StatusCancelled)
}

// ListAll returns every request with tenant and house details, optionally
// filtered by status
func (s *Service) ListAll(ctx context.Context, status string) ([]*RequestDetail, error) {
	if status != "" && !validStatuses[status] {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListAll(ctx, status)
}

// UpdateStatus moves a request through its lifecycle
func (s *Service) UpdateStatus(ctx context.Context, requestID, status string) (*Request, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	m, err := s.repo.UpdateStatus(ctx, requestID, status)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrRequestNotFound
	}
	return m, nil
}
