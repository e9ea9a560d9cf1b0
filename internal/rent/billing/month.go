package billing

import (
	"fmt"
	"time"
)

// Month identifies one billing period, keyed as "YYYY-MM" in storage.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the billing period containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" key into a Month
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// String returns the "YYYY-MM" storage key for the month
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Name returns the English month name, e.g. "January"
func (m Month) Name() string {
	return m.Month.String()
}

// Before reports whether m is strictly earlier than other
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// After reports whether m is strictly later than other
func (m Month) After(other Month) bool {
	return other.Before(m)
}
