package billing

// ActiveAssignment is one active tenant-to-house assignment as seen by the
// monthly aggregator: the tenant, the room, and the contracted rent.
type ActiveAssignment struct {
	TenantID    string
	TenantName  string
	TenantEmail string
	HouseID     string
	RoomName    string
	Price       int64
}

// PaymentRecord is one paid rent payment for the month under aggregation.
type PaymentRecord struct {
	TenantID string
	Amount   int64
}

// OutstandingTenant is an active assignment whose payments for the month do
// not cover the contracted rent.
type OutstandingTenant struct {
	TenantID    string `json:"tenant_id"`
	TenantName  string `json:"tenant_name"`
	TenantEmail string `json:"tenant_email"`
	HouseID     string `json:"house_id"`
	RoomName    string `json:"room_name"`
	Expected    int64  `json:"expected_amount"`
	Paid        int64  `json:"paid_amount"`
	Outstanding int64  `json:"outstanding"`
}

// MonthlySummary is the collection picture for a single month.
type MonthlySummary struct {
	ExpectedTotal   int64               `json:"expected_total"`
	PaidTotal       int64               `json:"paid_total"`
	Remaining       int64               `json:"remaining"`
	AssignedTenants int                 `json:"assigned_tenants"`
	PaidTenants     int                 `json:"paid_tenants"`
	UnpaidTenants   []OutstandingTenant `json:"unpaid_tenants"`
}

// Summarize computes the expected-vs-collected totals and the per-tenant
// outstanding list for one month. The expected total covers every active
// assignment regardless of when it started: the view is the current
// collection target, not a per-tenant liability schedule. Remaining is signed
// and goes negative on overpayment; callers clamp for display if they want.
//
// Summarize reads nothing and writes nothing. Run it again after recording a
// payment to get the updated picture.
func Summarize(assignments []ActiveAssignment, payments []PaymentRecord) MonthlySummary {
	paidByTenant := make(map[string]int64, len(payments))
	var paidTotal int64
	for _, p := range payments {
		paidByTenant[p.TenantID] += p.Amount
		paidTotal += p.Amount
	}

	var expectedTotal int64
	var unpaid []OutstandingTenant
	for _, a := range assignments {
		expectedTotal += a.Price

		paid := paidByTenant[a.TenantID]
		if paid < a.Price {
			unpaid = append(unpaid, OutstandingTenant{
				TenantID:    a.TenantID,
				TenantName:  a.TenantName,
				TenantEmail: a.TenantEmail,
				HouseID:     a.HouseID,
				RoomName:    a.RoomName,
				Expected:    a.Price,
				Paid:        paid,
				Outstanding: a.Price - paid,
			})
		}
	}

	return MonthlySummary{
		ExpectedTotal:   expectedTotal,
		PaidTotal:       paidTotal,
		Remaining:       expectedTotal - paidTotal,
		AssignedTenants: len(assignments),
		PaidTenants:     len(paidByTenant),
		UnpaidTenants:   unpaid,
	}
}
