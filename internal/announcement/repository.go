package announcement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const announcementColumns = "id, admin_id, title, content, target_audience, is_active, created_at, updated_at"

// Repository handles announcement data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new announcement repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func scanAnnouncement(row *sql.Row) (*Announcement, error) {
	a := &Announcement{}
	err := row.Scan(
		&a.ID, &a.AdminID, &a.Title, &a.Content,
		&a.TargetAudience, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new announcement
func (r *Repository) Create(ctx context.Context, adminID string, req *CreateAnnouncementRequest) (*Announcement, error) {
	query := fmt.Sprintf(`
		INSERT INTO announcements (id, admin_id, title, content, target_audience, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		RETURNING %s
	`, announcementColumns)

	a, err := scanAnnouncement(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), adminID, req.Title, req.Content, req.TargetAudience,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return a, nil
}

// List retrieves announcements newest first. activeOnly limits the result to
// visible ones, which is what tenants see.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*Announcement, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements`, announcementColumns)
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*Announcement
	for rows.Next() {
		a := &Announcement{}
		if err := rows.Scan(
			&a.ID, &a.AdminID, &a.Title, &a.Content,
			&a.TargetAudience, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// SetActive toggles an announcement's visibility
func (r *Repository) SetActive(ctx context.Context, id string, isActive bool) (*Announcement, error) {
	query := fmt.Sprintf(`
		UPDATE announcements
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, announcementColumns)

	a, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, id, isActive))
	if err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	return a, nil
}

// Delete removes an announcement
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrAnnouncementNotFound
	}

	return nil
}
