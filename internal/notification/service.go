package notification

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Notify delivers an in-app notification to one user
func (s *Service) Notify(ctx context.Context, userID, kind, title, body string) (*Notification, error) {
	return s.repo.Create(ctx, userID, kind, title, body)
}

// ListMine returns the user's notifications, newest first
func (s *Service) ListMine(ctx context.Context, userID string) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// MarkRead flags one of the user's notifications as read
func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	ok, err := s.repo.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
