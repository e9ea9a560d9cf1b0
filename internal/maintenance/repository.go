package maintenance

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const requestColumns = "id, tenant_id, house_id, title, description, request_type, priority, status, created_at, updated_at"

// Repository handles maintenance request data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new maintenance repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func scanRequest(row *sql.Row) (*Request, error) {
	m := &Request{}
	err := row.Scan(
		&m.ID, &m.TenantID, &m.HouseID, &m.Title, &m.Description,
		&m.RequestType, &m.Priority, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Create inserts a new maintenance request with status "pending"
func (r *Repository) Create(ctx context.Context, tenantID, houseID string, req *CreateRequestRequest) (*Request, error) {
	query := fmt.Sprintf(`
		INSERT INTO maintenance_requests (id, tenant_id, house_id, title, description, request_type, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', NOW(), NOW())
		RETURNING %s
	`, requestColumns)

	m, err := scanRequest(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), tenantID, houseID,
		req.Title, req.Description, req.RequestType, req.Priority,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}
	return m, nil
}

// GetByID retrieves a request by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM maintenance_requests WHERE id = $1`, requestColumns)

	m, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}
	return m, nil
}

// ListByTenant retrieves a tenant's requests, newest first
func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]*Request, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM maintenance_requests
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, requestColumns)

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	defer rows.Close()

	var requests []*Request
	for rows.Next() {
		m := &Request{}
		if err := rows.Scan(
			&m.ID, &m.TenantID, &m.HouseID, &m.Title, &m.Description,
			&m.RequestType, &m.Priority, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan maintenance request: %w", err)
		}
		requests = append(requests, m)
	}

	return requests, rows.Err()
}

// ListAll retrieves every request with tenant and house details joined,
// newest first. Pass a status to filter; empty means all.
func (r *Repository) ListAll(ctx context.Context, status string) ([]*RequestDetail, error) {
	query := `
		SELECT m.id, m.tenant_id, m.house_id, m.title, m.description, m.request_type,
		       m.priority, m.status, m.created_at, m.updated_at,
		       p.full_name, h.room_name
		FROM maintenance_requests m
		JOIN profiles p ON p.id = m.tenant_id
		JOIN houses h ON h.id = m.house_id
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE m.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY m.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	defer rows.Close()

	var details []*RequestDetail
	for rows.Next() {
		d := &RequestDetail{}
		if err := rows.Scan(
			&d.ID, &d.TenantID, &d.HouseID, &d.Title, &d.Description,
			&d.RequestType, &d.Priority, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.TenantName, &d.RoomName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan maintenance request: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

// UpdateStatus sets a request's status
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*Request, error) {
	query := fmt.Sprintf(`
		UPDATE maintenance_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, requestColumns)

	m, err := scanRequest(r.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}
	return m, nil
}

// CountByStatus returns the number of requests with the given status
func (r *Repository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM maintenance_requests WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count maintenance requests: %w", err)
	}
	return count, nil
}
