package rent

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/amutiso/kwakamande/internal/rent/billing"
)

// Repository handles rent payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new rent repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a payment row. Every inserted row is status "paid"; derived
// labels are never written back.
func (r *Repository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	query := `
		INSERT INTO rent_payments (id, tenant_id, house_id, amount, payment_method, payment_reference, payment_date, month_year, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'paid', NOW())
		RETURNING id, tenant_id, house_id, amount, payment_method, payment_reference, payment_date, month_year, status, created_at
	`

	out := &Payment{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), p.TenantID, p.HouseID, p.Amount,
		p.PaymentMethod, p.PaymentReference, p.PaymentDate, p.MonthYear,
	).Scan(
		&out.ID, &out.TenantID, &out.HouseID, &out.Amount,
		&out.PaymentMethod, &out.PaymentReference, &out.PaymentDate,
		&out.MonthYear, &out.Status, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return out, nil
}

// ListPaidByMonth returns the paid records for one month in the shape the
// aggregator consumes
func (r *Repository) ListPaidByMonth(ctx context.Context, monthYear string) ([]billing.PaymentRecord, error) {
	query := `
		SELECT tenant_id, amount
		FROM rent_payments
		WHERE month_year = $1 AND status = 'paid'
	`

	rows, err := r.db.QueryContext(ctx, query, monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for month: %w", err)
	}
	defer rows.Close()

	var records []billing.PaymentRecord
	for rows.Next() {
		var rec billing.PaymentRecord
		if err := rows.Scan(&rec.TenantID, &rec.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan payment record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByTenantYear returns a tenant's payments for one calendar year
func (r *Repository) ListByTenantYear(ctx context.Context, tenantID string, year int) ([]*Payment, error) {
	query := `
		SELECT id, tenant_id, house_id, amount, payment_method, payment_reference, payment_date, month_year, status, created_at
		FROM rent_payments
		WHERE tenant_id = $1 AND month_year LIKE $2
		ORDER BY payment_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, fmt.Sprintf("%04d-%%", year))
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p := &Payment{}
		if err := rows.Scan(
			&p.ID, &p.TenantID, &p.HouseID, &p.Amount,
			&p.PaymentMethod, &p.PaymentReference, &p.PaymentDate,
			&p.MonthYear, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// ListDetailsByMonth returns all payments for one month with tenant and house
// columns joined, newest first
func (r *Repository) ListDetailsByMonth(ctx context.Context, monthYear string) ([]*PaymentDetail, error) {
	query := `
		SELECT rp.id, rp.tenant_id, rp.house_id, rp.amount, rp.payment_method, rp.payment_reference,
		       rp.payment_date, rp.month_year, rp.status, rp.created_at,
		       p.full_name, p.email, h.room_name
		FROM rent_payments rp
		JOIN profiles p ON p.id = rp.tenant_id
		JOIN houses h ON h.id = rp.house_id
		WHERE rp.month_year = $1
		ORDER BY rp.payment_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment details: %w", err)
	}
	defer rows.Close()

	var details []*PaymentDetail
	for rows.Next() {
		d := &PaymentDetail{}
		if err := rows.Scan(
			&d.ID, &d.TenantID, &d.HouseID, &d.Amount,
			&d.PaymentMethod, &d.PaymentReference, &d.PaymentDate,
			&d.MonthYear, &d.Status, &d.CreatedAt,
			&d.TenantName, &d.TenantEmail, &d.RoomName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment detail: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

// HasPaidForMonth reports whether the tenant has at least one paid row for
// the month
func (r *Repository) HasPaidForMonth(ctx context.Context, tenantID, monthYear string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM rent_payments
			WHERE tenant_id = $1 AND month_year = $2 AND status = 'paid'
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, tenantID, monthYear).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payment: %w", err)
	}
	return exists, nil
}
