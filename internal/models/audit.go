package models

import "time"

// AuditLog is the persistence shape of one audit-trail record.
// Meta is stored as a jsonb column.
type AuditLog struct {
	AuditID  string    `db:"audit_id"`
	ActorID  string    `db:"actor_id"`
	Action   string    `db:"action"`
	Entity   string    `db:"entity"`
	EntityID string    `db:"entity_id"`
	Meta     []byte    `db:"meta"`
	At       time.Time `db:"at"`
}
