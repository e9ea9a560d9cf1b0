package rent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amutiso/kwakamande/internal/assignment"
	"github.com/amutiso/kwakamande/internal/rent/billing"
)

// Common errors
var (
	ErrNoActiveAssignment = errors.New("tenant has no active house assignment")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidMonth       = errors.New("month must be in YYYY-MM format")
	ErrFutureMonth        = errors.New("cannot record a payment for a future month")
	ErrNothingOutstanding = errors.New("tenant has no outstanding balance for this month")
)

// Payment instruction details shown to tenants. These mirror the property's
// M-Pesa paybill.
const (
	paybillNumber = "274247"
	accountNumber = "0728159403"
	accountName   = "Anthony Mutuku Mutiso"
)

// Service handles rent business logic
type Service struct {
	repo           *Repository
	assignmentRepo *assignment.Repository
	now            func() time.Time
}

// NewService creates a new rent service with repository dependencies injected
func NewService(repo *Repository, assignmentRepo *assignment.Repository) *Service {
	return &Service{repo: repo, assignmentRepo: assignmentRepo, now: time.Now}
}

// RecordPayment records a rent payment made by the tenant for a given month.
// The payment is stamped with today's date; the grace and late windows are
// judged from that date when the schedule is rendered.
func (s *Service) RecordPayment(ctx context.Context, tenantID string, req *RecordPaymentRequest) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	period, err := billing.ParseMonth(req.MonthYear)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	today := s.now()
	if period.After(billing.MonthOf(today)) {
		return nil, ErrFutureMonth
	}

	a, err := s.assignmentRepo.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoActiveAssignment
	}

	return s.repo.Create(ctx, &Payment{
		TenantID:         tenantID,
		HouseID:          a.HouseID,
		Amount:           req.Amount,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		PaymentDate:      today,
		MonthYear:        period.String(),
	})
}

// RecordOutstanding clears a tenant's unpaid balance for a month with a
// manual entry made by an admin. The recorded amount is exactly what the
// monthly summary reports as outstanding, so the summary reaches zero for
// that tenant after the write.
func (s *Service) RecordOutstanding(ctx context.Context, req *RecordOutstandingRequest) (*Payment, error) {
	if _, err := billing.ParseMonth(req.MonthYear); err != nil {
		return nil, ErrInvalidMonth
	}

	summary, err := s.MonthlySummary(ctx, req.MonthYear)
	if err != nil {
		return nil, err
	}

	for _, t := range summary.UnpaidTenants {
		if t.TenantID != req.TenantID {
			continue
		}
		reference := fmt.Sprintf("Manual entry for %s", t.TenantName)
		return s.repo.Create(ctx, &Payment{
			TenantID:         t.TenantID,
			HouseID:          t.HouseID,
			Amount:           t.Outstanding,
			PaymentMethod:    "manual",
			PaymentReference: &reference,
			PaymentDate:      s.now(),
			MonthYear:        req.MonthYear,
		})
	}

	return nil, ErrNothingOutstanding
}

// Schedule builds the tenant's billing schedule for one calendar year, most
// recent month first. Months before the assignment and after the current
// month are omitted.
func (s *Service) Schedule(ctx context.Context, tenantID string, year int) (*ScheduleResponse, error) {
	a, err := s.assignmentRepo.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoActiveAssignment
	}

	payments, err := s.repo.ListByTenantYear(ctx, tenantID, year)
	if err != nil {
		return nil, err
	}

	// Earliest payment per month decides the penalty window.
	paymentDates := make(map[string]time.Time, len(payments))
	for _, p := range payments {
		if existing, ok := paymentDates[p.MonthYear]; !ok || p.PaymentDate.Before(existing) {
			paymentDates[p.MonthYear] = p.PaymentDate
		}
	}

	months := billing.Schedule(a.AssignedAt, year, s.now(), paymentDates)

	resp := &ScheduleResponse{
		Year:   year,
		Months: make([]ScheduleEntry, 0, len(months)),
	}
	if a.House != nil {
		resp.RoomName = a.House.RoomName
		resp.Price = a.House.Price
	}

	for _, m := range months {
		entry := ScheduleEntry{
			MonthYear:  m.Period.String(),
			MonthName:  m.Period.Name(),
			Amount:     resp.Price,
			Penalty:    m.Classification.Penalty,
			TotalDue:   resp.Price + m.Classification.Penalty,
			Status:     string(m.Classification.Status),
			HasPayment: m.HasPayment,
		}
		if d, ok := paymentDates[m.Period.String()]; ok {
			formatted := d.Format("2006-01-02")
			entry.PaymentDate = &formatted
		}
		resp.Months = append(resp.Months, entry)
	}

	return resp, nil
}

// MonthlySummary computes the collection picture for one month across all
// active assignments
func (s *Service) MonthlySummary(ctx context.Context, monthYear string) (*SummaryResponse, error) {
	if _, err := billing.ParseMonth(monthYear); err != nil {
		return nil, ErrInvalidMonth
	}

	details, err := s.assignmentRepo.ListActiveDetails(ctx)
	if err != nil {
		return nil, err
	}

	assignments := make([]billing.ActiveAssignment, 0, len(details))
	for _, d := range details {
		assignments = append(assignments, billing.ActiveAssignment{
			TenantID:    d.TenantID,
			TenantName:  d.TenantName,
			TenantEmail: d.TenantEmail,
			HouseID:     d.HouseID,
			RoomName:    d.RoomName,
			Price:       d.Price,
		})
	}

	payments, err := s.repo.ListPaidByMonth(ctx, monthYear)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		MonthYear:      monthYear,
		MonthlySummary: billing.Summarize(assignments, payments),
	}, nil
}

// ListDetailsByMonth returns all payments for one month with tenant and
// house details
func (s *Service) ListDetailsByMonth(ctx context.Context, monthYear string) ([]*PaymentDetail, error) {
	if _, err := billing.ParseMonth(monthYear); err != nil {
		return nil, ErrInvalidMonth
	}
	return s.repo.ListDetailsByMonth(ctx, monthYear)
}

// Instructions returns the payment instructions shown to tenants
func (s *Service) Instructions() *PaymentInstructions {
	return &PaymentInstructions{
		Paybill:       paybillNumber,
		AccountNumber: accountNumber,
		AccountName:   accountName,
		Currency:      "KSH",
	}
}
