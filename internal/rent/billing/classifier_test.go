package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestClassify_FutureMonthHasNoStatus(t *testing.T) {
	today := date(2025, time.June, 15)

	_, billable := Classify(Month{2025, time.July}, today, nil)
	assert.False(t, billable)

	_, billable = Classify(Month{2026, time.January}, today, nil)
	assert.False(t, billable)

	// Even a recorded payment does not make a future month billable.
	paid := date(2025, time.July, 3)
	_, billable = Classify(Month{2025, time.July}, today, &paid)
	assert.False(t, billable)
}

func TestClassify_PaymentWithinGraceWindow(t *testing.T) {
	today := date(2025, time.June, 20)
	paid := date(2025, time.June, 3)

	cls, billable := Classify(Month{2025, time.June}, today, &paid)
	require.True(t, billable)
	assert.Equal(t, StatusPaid, cls.Status)
	assert.Equal(t, int64(0), cls.Penalty)
}

func TestClassify_PaymentInLateWindow(t *testing.T) {
	today := date(2025, time.June, 20)
	paid := date(2025, time.June, 7)

	cls, billable := Classify(Month{2025, time.June}, today, &paid)
	require.True(t, billable)
	assert.Equal(t, StatusLate, cls.Status)
	assert.Equal(t, int64(LateFee), cls.Penalty)
}

func TestClassify_PaymentAfterDayNineCountsAsPaid(t *testing.T) {
	// Documented asymmetry: a payment recorded after day 9 is still "paid"
	// with no penalty, while a missing payment after day 9 is overdue.
	today := date(2025, time.June, 20)
	paid := date(2025, time.June, 15)

	cls, billable := Classify(Month{2025, time.June}, today, &paid)
	require.True(t, billable)
	assert.Equal(t, StatusPaid, cls.Status)
	assert.Equal(t, int64(0), cls.Penalty)
}

func TestClassify_NoPaymentCurrentMonth(t *testing.T) {
	period := Month{2025, time.June}

	tests := []struct {
		name        string
		today       time.Time
		wantStatus  PaymentStatus
		wantPenalty int64
	}{
		{"within grace window", date(2025, time.June, 3), StatusPending, 0},
		{"grace boundary", date(2025, time.June, 5), StatusPending, 0},
		{"late window", date(2025, time.June, 7), StatusPendingLate, LateFee},
		{"late boundary", date(2025, time.June, 9), StatusPendingLate, LateFee},
		{"past late window", date(2025, time.June, 12), StatusOverdue, LateFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, billable := Classify(period, tt.today, nil)
			require.True(t, billable)
			assert.Equal(t, tt.wantStatus, cls.Status)
			assert.Equal(t, tt.wantPenalty, cls.Penalty)
		})
	}
}

func TestClassify_NoPaymentPastMonthIsOverdue(t *testing.T) {
	// Overdue regardless of today's day-of-month.
	for _, day := range []int{1, 5, 9, 28} {
		cls, billable := Classify(Month{2025, time.May}, date(2025, time.June, day), nil)
		require.True(t, billable)
		assert.Equal(t, StatusOverdue, cls.Status)
		assert.Equal(t, int64(LateFee), cls.Penalty)
	}

	// Previous year too.
	cls, billable := Classify(Month{2024, time.December}, date(2025, time.June, 2), nil)
	require.True(t, billable)
	assert.Equal(t, StatusOverdue, cls.Status)
}

func TestSchedule_StartsAtAssignmentMonth(t *testing.T) {
	assignedAt := date(2025, time.March, 14)
	today := date(2025, time.June, 20)

	months := Schedule(assignedAt, 2025, today, nil)

	require.Len(t, months, 4)
	// Most recent first.
	assert.Equal(t, "2025-06", months[0].Period.String())
	assert.Equal(t, "2025-05", months[1].Period.String())
	assert.Equal(t, "2025-04", months[2].Period.String())
	assert.Equal(t, "2025-03", months[3].Period.String())
}

func TestSchedule_YearBeforeAssignmentIsEmpty(t *testing.T) {
	assignedAt := date(2025, time.March, 14)
	today := date(2025, time.June, 20)

	assert.Empty(t, Schedule(assignedAt, 2024, today, nil))
}

func TestSchedule_FutureYearIsEmpty(t *testing.T) {
	assignedAt := date(2024, time.March, 14)
	today := date(2025, time.June, 20)

	assert.Empty(t, Schedule(assignedAt, 2026, today, nil))
}

func TestSchedule_PriorYearRunsThroughDecember(t *testing.T) {
	assignedAt := date(2024, time.October, 1)
	today := date(2025, time.June, 20)

	months := Schedule(assignedAt, 2024, today, nil)

	require.Len(t, months, 3)
	assert.Equal(t, "2024-12", months[0].Period.String())
	assert.Equal(t, "2024-10", months[2].Period.String())
	for _, m := range months {
		assert.Equal(t, StatusOverdue, m.Classification.Status)
	}
}

func TestSchedule_AttachesPaymentClassification(t *testing.T) {
	assignedAt := date(2025, time.April, 2)
	today := date(2025, time.June, 12)
	payments := map[string]time.Time{
		"2025-04": date(2025, time.April, 4),
		"2025-05": date(2025, time.May, 8),
	}

	months := Schedule(assignedAt, 2025, today, payments)

	require.Len(t, months, 3)

	// June: no payment, today past day 9.
	assert.Equal(t, "2025-06", months[0].Period.String())
	assert.False(t, months[0].HasPayment)
	assert.Equal(t, StatusOverdue, months[0].Classification.Status)

	// May: paid on the 8th, late window.
	assert.True(t, months[1].HasPayment)
	assert.Equal(t, StatusLate, months[1].Classification.Status)
	assert.Equal(t, int64(LateFee), months[1].Classification.Penalty)

	// April: paid on the 4th, grace window.
	assert.True(t, months[2].HasPayment)
	assert.Equal(t, StatusPaid, months[2].Classification.Status)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-06")
	require.NoError(t, err)
	assert.Equal(t, Month{2025, time.June}, m)
	assert.Equal(t, "2025-06", m.String())
	assert.Equal(t, "June", m.Name())

	_, err = ParseMonth("June 2025")
	assert.Error(t, err)

	_, err = ParseMonth("2025-13")
	assert.Error(t, err)
}
