package domain

import "time"

// Audit actions recorded by the core operations.
const (
	AuditJournalPost = "journal.post"
	AuditPayrollRun  = "payroll.run"
)

// AuditLog is one explicit audit-trail record emitted after a state-changing
// operation commits. Dispatch is the caller's concern; the core only builds
// and hands these over.
type AuditLog struct {
	AuditID  string         `json:"auditID"`
	ActorID  string         `json:"actorID"`
	Action   string         `json:"action"`
	Entity   string         `json:"entity"`
	EntityID string         `json:"entityID"`
	Meta     map[string]any `json:"meta,omitempty"`
	At       time.Time      `json:"at"`
}
