package models

import "time"

// PeriodStatus is the lifecycle state of a financial period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// FinancialPeriod is the persistence shape of a posting window.
type FinancialPeriod struct {
	PeriodID  string       `db:"period_id"`
	Name      string       `db:"name"`
	StartDate time.Time    `db:"start_date"`
	EndDate   time.Time    `db:"end_date"`
	Status    PeriodStatus `db:"status"`
	AuditFields
}
