package house

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrHouseNotFound = errors.New("house not found")
)

// Service handles house business logic
type Service struct {
	repo *Repository
}

// NewService creates a new house service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a house to the inventory
func (s *Service) Create(ctx context.Context, req *CreateHouseRequest) (*House, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a house by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*House, error) {
	house, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, ErrHouseNotFound
	}
	return house, nil
}

// Search retrieves houses matching the filters
func (s *Service) Search(ctx context.Context, filters *SearchFilters) ([]*House, error) {
	return s.repo.Search(ctx, filters)
}

// Update modifies an existing house
func (s *Service) Update(ctx context.Context, id string, req *UpdateHouseRequest) (*House, error) {
	house, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, ErrHouseNotFound
	}
	return house, nil
}

// SetVacancy flips the manual vacancy flag. Assignment writes keep the flag
// in sync transactionally; this is the admin override for everything else
// (repairs, holds).
func (s *Service) SetVacancy(ctx context.Context, id string, isVacant bool) (*House, error) {
	house, err := s.repo.SetVacancy(ctx, id, isVacant)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, ErrHouseNotFound
	}
	return house, nil
}
