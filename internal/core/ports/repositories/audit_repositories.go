package repositories

import (
	"context"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
)

// AuditRepository records audit-trail entries. Recording happens after the
// business transaction commits; a failure here must never undo the operation.
type AuditRepository interface {
	// RecordAudit appends one audit log row.
	RecordAudit(ctx context.Context, log domain.AuditLog) error
}
