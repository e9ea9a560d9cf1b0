package assignment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles assignment data persistence. Assignment writes also
// maintain the houses.is_vacant flag; both sides of every paired write run in
// one transaction so the vacancy flag and the assignment rows cannot
// disagree.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new assignment repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetActiveByTenant retrieves the tenant's single active assignment joined to
// its house, or nil when there is none. If a data-integrity lapse ever leaves
// more than one active row, the newest wins.
func (r *Repository) GetActiveByTenant(ctx context.Context, tenantID string) (*Assignment, error) {
	query := `
		SELECT a.id, a.tenant_id, a.house_id, a.assigned_by, a.assigned_at, a.is_active,
		       h.id, h.floor, h.section, h.room_name, h.room_type, h.price
		FROM tenant_assignments a
		JOIN houses h ON h.id = a.house_id
		WHERE a.tenant_id = $1 AND a.is_active = TRUE
		ORDER BY a.assigned_at DESC
		LIMIT 1
	`

	a := &Assignment{House: &AssignedHouse{}}
	err := r.db.QueryRowContext(ctx, query, tenantID).Scan(
		&a.ID,
		&a.TenantID,
		&a.HouseID,
		&a.AssignedBy,
		&a.AssignedAt,
		&a.IsActive,
		&a.House.ID,
		&a.House.Floor,
		&a.House.Section,
		&a.House.RoomName,
		&a.House.RoomType,
		&a.House.Price,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}

	return a, nil
}

// ListActiveDetails retrieves every active assignment joined with tenant and
// house details, the working set of the monthly collection views
func (r *Repository) ListActiveDetails(ctx context.Context) ([]*ActiveDetail, error) {
	query := `
		SELECT a.tenant_id, p.full_name, p.email, a.house_id, h.room_name, h.price
		FROM tenant_assignments a
		JOIN profiles p ON p.id = a.tenant_id
		JOIN houses h ON h.id = a.house_id
		WHERE a.is_active = TRUE
		ORDER BY h.floor, h.section, h.room_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active assignments: %w", err)
	}
	defer rows.Close()

	var details []*ActiveDetail
	for rows.Next() {
		d := &ActiveDetail{}
		if err := rows.Scan(
			&d.TenantID,
			&d.TenantName,
			&d.TenantEmail,
			&d.HouseID,
			&d.RoomName,
			&d.Price,
		); err != nil {
			return nil, fmt.Errorf("failed to scan active assignment: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

// Assign deactivates any prior active assignment for the tenant, frees the
// houses those rows held, inserts the new assignment and marks the new house
// occupied. Everything runs in one transaction; a failure at any step leaves
// the data untouched.
func (r *Repository) Assign(ctx context.Context, tenantID, houseID, assignedBy string) (*Assignment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin assign: %w", err)
	}
	defer tx.Rollback()

	var isVacant bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_vacant FROM houses WHERE id = $1 FOR UPDATE`, houseID,
	).Scan(&isVacant)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrHouseNotFound
		}
		return nil, fmt.Errorf("failed to lock house: %w", err)
	}
	if !isVacant {
		return nil, ErrHouseOccupied
	}

	// Deactivate whatever the tenant held before and free those houses.
	rows, err := tx.QueryContext(ctx, `
		UPDATE tenant_assignments
		SET is_active = FALSE
		WHERE tenant_id = $1 AND is_active = TRUE
		RETURNING house_id
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate prior assignments: %w", err)
	}
	var freedHouses []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan freed house: %w", err)
		}
		freedHouses = append(freedHouses, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to deactivate prior assignments: %w", err)
	}

	if len(freedHouses) > 0 {
		if _, err := tx.ExecContext(ctx,
			`UPDATE houses SET is_vacant = TRUE WHERE id = ANY($1)`, pq.Array(freedHouses),
		); err != nil {
			return nil, fmt.Errorf("failed to free prior houses: %w", err)
		}
	}

	a := &Assignment{}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO tenant_assignments (id, tenant_id, house_id, assigned_by, assigned_at, is_active)
		VALUES ($1, $2, $3, $4, NOW(), TRUE)
		RETURNING id, tenant_id, house_id, assigned_by, assigned_at, is_active
	`, uuid.NewString(), tenantID, houseID, assignedBy).Scan(
		&a.ID,
		&a.TenantID,
		&a.HouseID,
		&a.AssignedBy,
		&a.AssignedAt,
		&a.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert assignment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE houses SET is_vacant = FALSE WHERE id = $1`, houseID,
	); err != nil {
		return nil, fmt.Errorf("failed to mark house occupied: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assign: %w", err)
	}

	return a, nil
}

// Unassign deactivates the tenant's active assignment and marks its house
// vacant in one transaction. Returns the deactivated assignment, or nil when
// the tenant had none.
func (r *Repository) Unassign(ctx context.Context, tenantID string) (*Assignment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unassign: %w", err)
	}
	defer tx.Rollback()

	a := &Assignment{}
	err = tx.QueryRowContext(ctx, `
		UPDATE tenant_assignments
		SET is_active = FALSE
		WHERE tenant_id = $1 AND is_active = TRUE
		RETURNING id, tenant_id, house_id, assigned_by, assigned_at, is_active
	`, tenantID).Scan(
		&a.ID,
		&a.TenantID,
		&a.HouseID,
		&a.AssignedBy,
		&a.AssignedAt,
		&a.IsActive,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to deactivate assignment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE houses SET is_vacant = TRUE WHERE id = $1`, a.HouseID,
	); err != nil {
		return nil, fmt.Errorf("failed to mark house vacant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit unassign: %w", err)
	}

	return a, nil
}
