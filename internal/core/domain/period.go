package domain

import "time"

// PeriodStatus is the lifecycle state of a financial period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// FinancialPeriod is a posting window. At most one period should be open for
// any given date; entries may only be posted into an open period whose
// [StartDate, EndDate] window contains the entry date.
type FinancialPeriod struct {
	PeriodID  string       `json:"periodID"` // Primary key (UUID)
	Name      string       `json:"name"`     // e.g. "2025-01"
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Status    PeriodStatus `json:"status"`
	AuditFields
}

// ContainsDate reports whether date falls within the period window,
// inclusive on both ends. Only the calendar day is significant.
func (p FinancialPeriod) ContainsDate(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(p.StartDate)) && !d.After(truncateToDay(p.EndDate))
}

// IsOpen reports whether the period accepts postings.
func (p FinancialPeriod) IsOpen() bool {
	return p.Status == PeriodOpen
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
