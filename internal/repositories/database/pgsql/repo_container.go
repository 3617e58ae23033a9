package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		PeriodRepo:   newPgxPeriodRepository(dbPool),
		JournalRepo:  newPgxJournalRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		PayrollRepo:  newPgxPayrollRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
		AuditRepo:    newPgxAuditRepository(dbPool),
	}
}
