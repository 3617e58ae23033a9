package services

import (
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly wired
// dependencies. The journal service depends on the account and period
// services, so those are constructed first.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, authCfg AuthConfig) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Period = NewPeriodService(repos.PeriodRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, container.Period, repos.AuditRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Payroll = NewPayrollService(repos.PayrollRepo, repos.EmployeeRepo, repos.AuditRepo, domain.SenegalSchedule2025())
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(repos.UserRepo, authCfg)

	return container
}
