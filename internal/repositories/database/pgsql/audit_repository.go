package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditRepository creates a new repository for audit-trail data.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{pool: pool}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

// RecordAudit appends one audit log row. Meta is stored as jsonb.
func (r *PgxAuditRepository) RecordAudit(ctx context.Context, log domain.AuditLog) error {
	meta, err := json.Marshal(log.Meta)
	if err != nil {
		return fmt.Errorf("failed to marshal audit meta for %s: %w", log.AuditID, err)
	}

	query := `
		INSERT INTO audit_logs (audit_id, actor_id, action, entity, entity_id, meta, at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := r.pool.Exec(ctx, query,
		log.AuditID,
		log.ActorID,
		log.Action,
		log.Entity,
		log.EntityID,
		meta,
		log.At,
	); err != nil {
		return fmt.Errorf("failed to record audit %s: %w", log.AuditID, err)
	}
	return nil
}
