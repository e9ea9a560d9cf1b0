package rent

import (
	"github.com/amutiso/kwakamande/internal/rent/billing"
)

// RecordPaymentRequest represents a tenant recording a rent payment they have
// made
type RecordPaymentRequest struct {
	Amount           int64   `json:"amount" validate:"required,gt=0"`
	PaymentMethod    string  `json:"payment_method" validate:"required"`
	PaymentReference *string `json:"payment_reference,omitempty"`
	MonthYear        string  `json:"month_year" validate:"required"`
}

// RecordOutstandingRequest represents an admin clearing a tenant's unpaid
// balance for a month with a manual entry
type RecordOutstandingRequest struct {
	TenantID  string `json:"tenant_id" validate:"required"`
	MonthYear string `json:"month_year" validate:"required"`
}

// ScheduleEntry is one month of a tenant's billing schedule
type ScheduleEntry struct {
	MonthYear   string  `json:"month_year"`
	MonthName   string  `json:"month_name"`
	Amount      int64   `json:"amount"`
	Penalty     int64   `json:"penalty"`
	TotalDue    int64   `json:"total_due"`
	Status      string  `json:"status"`
	HasPayment  bool    `json:"has_payment"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

// ScheduleResponse is a tenant's billing schedule for one calendar year,
// most recent month first
type ScheduleResponse struct {
	Year     int             `json:"year"`
	RoomName string          `json:"room_name"`
	Price    int64           `json:"price"`
	Months   []ScheduleEntry `json:"months"`
}

// PaymentInstructions tells tenants where to send rent
type PaymentInstructions struct {
	Paybill       string `json:"paybill"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Currency      string `json:"currency"`
}

// SummaryResponse wraps the monthly collection summary with the month it
// covers
type SummaryResponse struct {
	MonthYear string `json:"month_year"`
	billing.MonthlySummary
}
