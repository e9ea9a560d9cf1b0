package rent

import "time"

// Payment represents one recorded rent payment. Rows are append-only and
// always stored with status "paid"; late and overdue labels are derived at
// read time, never persisted.
type Payment struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	HouseID          string    `json:"house_id"`
	Amount           int64     `json:"amount"`
	PaymentMethod    string    `json:"payment_method"`
	PaymentReference *string   `json:"payment_reference,omitempty"`
	PaymentDate      time.Time `json:"payment_date"`
	MonthYear        string    `json:"month_year"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// PaymentDetail is a payment joined with tenant and house columns for the
// admin monthly listing
type PaymentDetail struct {
	Payment
	TenantName  string `json:"tenant_name"`
	TenantEmail string `json:"tenant_email"`
	RoomName    string `json:"room_name"`
}
