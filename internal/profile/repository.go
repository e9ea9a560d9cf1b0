package profile

import (
	"context"
	"database/sql"
	"fmt"
)

// activeTenantPredicate is the ONE definition of "tenant who should appear in
// tenant-facing lists". Every tenant listing query uses it; soft-deleted
// profiles never reappear anywhere because no call site repeats the filter by
// hand.
const activeTenantPredicate = "role = 'tenant' AND deleted_at IS NULL"

const profileColumns = "id, role, full_name, email, phone, password_hash, deleted_at, created_at, updated_at"

// Repository handles profile data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new profile repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func scanProfile(row *sql.Row) (*Profile, error) {
	p := &Profile{}
	err := row.Scan(
		&p.ID,
		&p.Role,
		&p.FullName,
		&p.Email,
		&p.Phone,
		&p.PasswordHash,
		&p.DeletedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new profile
func (r *Repository) Create(ctx context.Context, id, role, fullName, email, passwordHash string, phone *string) (*Profile, error) {
	query := fmt.Sprintf(`
		INSERT INTO profiles (id, role, full_name, email, phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s
	`, profileColumns)

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id, role, fullName, email, phone, passwordHash))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

// GetByID retrieves a profile by its ID, soft-deleted ones included (auth
// decides what to do with them)
func (r *Repository) GetByID(ctx context.Context, id string) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetByEmail retrieves a profile by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE email = $1`, profileColumns)

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return p, nil
}

// ListActiveTenants retrieves every tenant that should appear in
// tenant-facing lists
func (r *Repository) ListActiveTenants(ctx context.Context) ([]*Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM profiles
		WHERE %s
		ORDER BY full_name
	`, profileColumns, activeTenantPredicate)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p := &Profile{}
		if err := rows.Scan(
			&p.ID,
			&p.Role,
			&p.FullName,
			&p.Email,
			&p.Phone,
			&p.PasswordHash,
			&p.DeletedAt,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// UpdateContact modifies a profile's contact details
func (r *Repository) UpdateContact(ctx context.Context, id string, req *UpdateProfileRequest) (*Profile, error) {
	query := fmt.Sprintf(`
		UPDATE profiles
		SET full_name = COALESCE($2, full_name),
		    phone = COALESCE($3, phone),
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING %s
	`, profileColumns)

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id, req.FullName, req.Phone))
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

// SoftDelete marks a profile deleted. The row stays for payment history; the
// active-tenant predicate keeps it out of every listing.
func (r *Repository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE profiles
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
