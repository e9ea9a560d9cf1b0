package billing

import "time"

// PaymentStatus is a derived label for one tenant-month. Only "paid" is ever
// persisted; every other label is computed at read time from the payment date
// and today's date, so the grace-period rules can change without touching
// stored rows.
type PaymentStatus string

const (
	StatusPaid        PaymentStatus = "paid"
	StatusLate        PaymentStatus = "late"
	StatusPending     PaymentStatus = "pending"
	StatusPendingLate PaymentStatus = "pending (late)"
	StatusOverdue     PaymentStatus = "overdue"
)

const (
	// LateFee is the flat penalty (KSh) applied once a month is classified
	// late or overdue. It does not accumulate.
	LateFee = 200

	// GraceEndDay is the last day of the month a payment incurs no penalty.
	GraceEndDay = 5

	// LateEndDay is the last day of the "late" window. After this day an
	// unpaid month is overdue.
	LateEndDay = 9
)

// Classification is the derived status and penalty for one tenant-month.
type Classification struct {
	Status  PaymentStatus `json:"status"`
	Penalty int64         `json:"penalty"`
}

// Classify derives the status of one billing period. paymentDate is the date
// of the recorded payment for that period, or nil when none exists. The
// second return value is false for periods after the current month, which are
// not yet billable and must be omitted from any rendered list.
//
// A payment made after day 9 still classifies as paid with no penalty while a
// missing payment after day 9 is overdue. That asymmetry matches the billing
// policy in production; see DESIGN.md before changing it, since closing it
// alters penalty outcomes.
func Classify(period Month, today time.Time, paymentDate *time.Time) (Classification, bool) {
	current := MonthOf(today)
	if period.After(current) {
		return Classification{}, false
	}

	if paymentDate != nil {
		day := paymentDate.Day()
		if day >= 1 && day <= GraceEndDay {
			return Classification{Status: StatusPaid}, true
		}
		if day >= GraceEndDay+1 && day <= LateEndDay {
			return Classification{Status: StatusLate, Penalty: LateFee}, true
		}
		return Classification{Status: StatusPaid}, true
	}

	if period == current {
		day := today.Day()
		switch {
		case day > LateEndDay:
			return Classification{Status: StatusOverdue, Penalty: LateFee}, true
		case day > GraceEndDay:
			return Classification{Status: StatusPendingLate, Penalty: LateFee}, true
		default:
			return Classification{Status: StatusPending}, true
		}
	}

	// Past month with no payment recorded.
	return Classification{Status: StatusOverdue, Penalty: LateFee}, true
}

// MonthStatus is one entry of a tenant's billing schedule.
type MonthStatus struct {
	Period         Month
	Classification Classification
	HasPayment     bool
}

// Schedule builds the billable months of one calendar year for an assignment
// that started at assignedAt, classified against today. Months before the
// assignment month and months after the current month are omitted. The result
// is ordered most recent first. paymentDates maps "YYYY-MM" keys to the
// payment date recorded for that period.
func Schedule(assignedAt time.Time, year int, today time.Time, paymentDates map[string]time.Time) []MonthStatus {
	assigned := MonthOf(assignedAt)
	if year < assigned.Year {
		return nil
	}

	startMonth := time.January
	if year == assigned.Year {
		startMonth = assigned.Month
	}
	endMonth := time.December
	if year == today.Year() {
		endMonth = today.Month()
	}
	if year > today.Year() {
		return nil
	}

	var months []MonthStatus
	for m := startMonth; m <= endMonth; m++ {
		period := Month{Year: year, Month: m}

		var paymentDate *time.Time
		if d, ok := paymentDates[period.String()]; ok {
			paymentDate = &d
		}

		cls, billable := Classify(period, today, paymentDate)
		if !billable {
			continue
		}
		months = append(months, MonthStatus{
			Period:         period,
			Classification: cls,
			HasPayment:     paymentDate != nil,
		})
	}

	// Most recent first.
	for i, j := 0, len(months)-1; i < j; i, j = i+1, j-1 {
		months[i], months[j] = months[j], months[i]
	}
	return months
}
