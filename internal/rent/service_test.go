package rent

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amutiso/kwakamande/internal/assignment"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	svc := NewService(NewRepository(db), assignment.NewRepository(db))
	return svc, mock, func() { db.Close() }
}

func activeAssignmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "house_id", "assigned_by", "assigned_at", "is_active",
		"h_id", "floor", "section", "room_name", "room_type", "price",
	})
}

func TestRecordPayment_FutureMonthRejected(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	svc.now = func() time.Time {
		return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	}

	_, err := svc.RecordPayment(context.Background(), "tenant-1", &RecordPaymentRequest{
		Amount:        5000,
		PaymentMethod: "mpesa",
		MonthYear:     "2025-07",
	})

	assert.ErrorIs(t, err, ErrFutureMonth)
}

func TestRecordPayment_BadInput(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.RecordPayment(context.Background(), "tenant-1", &RecordPaymentRequest{
		Amount:        0,
		PaymentMethod: "mpesa",
		MonthYear:     "2025-06",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.RecordPayment(context.Background(), "tenant-1", &RecordPaymentRequest{
		Amount:        5000,
		PaymentMethod: "mpesa",
		MonthYear:     "June 2025",
	})
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestRecordPayment_NoActiveAssignment(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT a.id, a.tenant_id").
		WithArgs("tenant-1").
		WillReturnRows(activeAssignmentRows())

	_, err := svc.RecordPayment(context.Background(), "tenant-1", &RecordPaymentRequest{
		Amount:        5000,
		PaymentMethod: "mpesa",
		MonthYear:     "2025-06",
	})

	assert.ErrorIs(t, err, ErrNoActiveAssignment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPayment_UsesAssignedHouse(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	now := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	assignedAt := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT a.id, a.tenant_id").
		WithArgs("tenant-1").
		WillReturnRows(activeAssignmentRows().AddRow(
			"assign-1", "tenant-1", "house-1", nil, assignedAt, true,
			"house-1", "1", "A", "A1", "bedsitter", int64(5000),
		))

	mock.ExpectQuery("INSERT INTO rent_payments").
		WithArgs(sqlmock.AnyArg(), "tenant-1", "house-1", int64(5000), "mpesa", nil, now, "2025-06").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "house_id", "amount", "payment_method", "payment_reference",
			"payment_date", "month_year", "status", "created_at",
		}).AddRow("pay-1", "tenant-1", "house-1", int64(5000), "mpesa", nil, now, "2025-06", "paid", now))

	p, err := svc.RecordPayment(context.Background(), "tenant-1", &RecordPaymentRequest{
		Amount:        5000,
		PaymentMethod: "mpesa",
		MonthYear:     "2025-06",
	})

	require.NoError(t, err)
	assert.Equal(t, "house-1", p.HouseID)
	assert.Equal(t, "paid", p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordOutstanding_ClearsExactBalance(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	now := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	mock.ExpectQuery("SELECT a.tenant_id, p.full_name").
		WillReturnRows(sqlmock.NewRows([]string{
			"tenant_id", "full_name", "email", "house_id", "room_name", "price",
		}).AddRow("tenant-1", "Jane Wanjiku", "jane@example.com", "house-1", "A1", int64(5000)))

	mock.ExpectQuery("SELECT tenant_id, amount").
		WithArgs("2025-06").
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id", "amount"}).
			AddRow("tenant-1", int64(2000)))

	reference := "Manual entry for Jane Wanjiku"
	mock.ExpectQuery("INSERT INTO rent_payments").
		WithArgs(sqlmock.AnyArg(), "tenant-1", "house-1", int64(3000), "manual", &reference, now, "2025-06").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "house_id", "amount", "payment_method", "payment_reference",
			"payment_date", "month_year", "status", "created_at",
		}).AddRow("pay-2", "tenant-1", "house-1", int64(3000), "manual", &reference, now, "2025-06", "paid", now))

	p, err := svc.RecordOutstanding(context.Background(), &RecordOutstandingRequest{
		TenantID:  "tenant-1",
		MonthYear: "2025-06",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3000), p.Amount)
	assert.Equal(t, "manual", p.PaymentMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordOutstanding_NothingOwed(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT a.tenant_id, p.full_name").
		WillReturnRows(sqlmock.NewRows([]string{
			"tenant_id", "full_name", "email", "house_id", "room_name", "price",
		}).AddRow("tenant-1", "Jane Wanjiku", "jane@example.com", "house-1", "A1", int64(5000)))

	mock.ExpectQuery("SELECT tenant_id, amount").
		WithArgs("2025-06").
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id", "amount"}).
			AddRow("tenant-1", int64(5000)))

	_, err := svc.RecordOutstanding(context.Background(), &RecordOutstandingRequest{
		TenantID:  "tenant-1",
		MonthYear: "2025-06",
	})

	assert.ErrorIs(t, err, ErrNothingOutstanding)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedule_EarliestPaymentDecidesWindow(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	today := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	assignedAt := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT a.id, a.tenant_id").
		WithArgs("tenant-1").
		WillReturnRows(activeAssignmentRows().AddRow(
			"assign-1", "tenant-1", "house-1", nil, assignedAt, true,
			"house-1", "1", "A", "A1", "bedsitter", int64(5000),
		))

	// Two partial payments for May: day 4 then day 8. The day-4 one decides
	// the window, so May classifies paid with no penalty.
	first := time.Date(2025, time.May, 4, 9, 0, 0, 0, time.UTC)
	second := time.Date(2025, time.May, 8, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, tenant_id, house_id").
		WithArgs("tenant-1", "2025-%").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "house_id", "amount", "payment_method", "payment_reference",
			"payment_date", "month_year", "status", "created_at",
		}).
			AddRow("pay-2", "tenant-1", "house-1", int64(2000), "mpesa", nil, second, "2025-05", "paid", second).
			AddRow("pay-1", "tenant-1", "house-1", int64(3000), "mpesa", nil, first, "2025-05", "paid", first))

	schedule, err := svc.Schedule(context.Background(), "tenant-1", 2025)

	require.NoError(t, err)
	assert.Equal(t, "A1", schedule.RoomName)
	assert.Equal(t, int64(5000), schedule.Price)
	require.Len(t, schedule.Months, 2)

	// Most recent first: June (unpaid, past day 9) then May.
	assert.Equal(t, "2025-06", schedule.Months[0].MonthYear)
	assert.Equal(t, "overdue", schedule.Months[0].Status)
	assert.Equal(t, int64(5200), schedule.Months[0].TotalDue)

	assert.Equal(t, "2025-05", schedule.Months[1].MonthYear)
	assert.Equal(t, "paid", schedule.Months[1].Status)
	assert.Equal(t, int64(0), schedule.Months[1].Penalty)
	require.NotNil(t, schedule.Months[1].PaymentDate)
	assert.Equal(t, "2025-05-04", *schedule.Months[1].PaymentDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructions(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	inst := svc.Instructions()
	assert.Equal(t, "274247", inst.Paybill)
	assert.Equal(t, "0728159403", inst.AccountNumber)
	assert.Equal(t, "Anthony Mutuku Mutiso", inst.AccountName)
}
