package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/core/services"
)

// MockEmployeeRepository is a mock type for the EmployeeRepositoryFacade interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByMatricule(ctx context.Context, matricule string) (*domain.Employee, error) {
	args := m.Called(ctx, matricule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error {
	args := m.Called(ctx, employeeID, userID, now)
	return args.Error(0)
}

// MockPayrollRepository is a mock type for the PayrollRepositoryFacade interface
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) FindRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockPayrollRepository) FindRunForPeriod(ctx context.Context, employeeID string, period string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, employeeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockPayrollRepository) ListRunsByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.PayrollRun, error) {
	args := m.Called(ctx, employeeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRun), args.Error(1)
}

func (m *MockPayrollRepository) SavePayrollRun(ctx context.Context, run domain.PayrollRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

// --- Test Suite Setup ---

type PayrollServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockPayrollRepo  *MockPayrollRepository
	mockAudit        *MockAuditRepository
	service          portssvc.PayrollSvcFacade

	employee domain.Employee
	actorID  string
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockPayrollRepo = new(MockPayrollRepository)
	suite.mockAudit = new(MockAuditRepository)
	suite.service = services.NewPayrollService(suite.mockPayrollRepo, suite.mockEmployeeRepo, suite.mockAudit, domain.SenegalSchedule2025())

	suite.employee = domain.Employee{
		EmployeeID: uuid.NewString(),
		Matricule:  "EMP-0042",
		FirstName:  "Awa",
		LastName:   "Ndiaye",
		Position:   "Comptable",
		BaseSalary: decimal.NewFromInt(500000),
		HireDate:   time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
	suite.actorID = uuid.NewString()
}

// --- Compute ---

func (suite *PayrollServiceTestSuite) TestCompute_WorkedExample() {
	// Gross 500 000: IPRES 28 000, CSS 15 000, taxable 457 000 lands in the
	// zero-rate bracket, TRIMF 1 000, net 456 000.
	result, err := suite.service.Compute(suite.employee, "2025-01", decimal.Zero)

	suite.Require().NoError(err)
	suite.True(result.GrossSalary.Equal(decimal.NewFromInt(500000)))
	suite.True(result.Deduction(domain.DeductionRetirement).Equal(decimal.NewFromInt(28000)))
	suite.True(result.Deduction(domain.DeductionHealth).Equal(decimal.NewFromInt(15000)))
	suite.True(result.Deduction(domain.DeductionIncomeTax).Equal(decimal.Zero))
	suite.True(result.Deduction(domain.DeductionFixedLevy).Equal(decimal.NewFromInt(1000)))
	suite.True(result.Contribution(domain.ContributionRetirement).Equal(decimal.NewFromInt(46000)))
	suite.True(result.Contribution(domain.ContributionHealth).Equal(decimal.NewFromInt(15000)))
	suite.True(result.Contribution(domain.ContributionHousing).Equal(decimal.NewFromInt(5000)))
	suite.True(result.NetSalary.Equal(decimal.NewFromInt(456000)), "net was %s", result.NetSalary)
	suite.Equal("2025-01", result.Period)
	suite.Equal("EMP-0042", result.Matricule)
	suite.Equal("Awa Ndiaye", result.EmployeeName)
}

func (suite *PayrollServiceTestSuite) TestCompute_BonusesIncludedInGross() {
	result, err := suite.service.Compute(suite.employee, "2025-01", decimal.NewFromInt(100000))

	suite.Require().NoError(err)
	suite.True(result.GrossSalary.Equal(decimal.NewFromInt(600000)))
	// 5.6% and 3% of the bonus-inclusive gross.
	suite.True(result.Deduction(domain.DeductionRetirement).Equal(decimal.NewFromInt(33600)))
	suite.True(result.Deduction(domain.DeductionHealth).Equal(decimal.NewFromInt(18000)))
}

func (suite *PayrollServiceTestSuite) TestCompute_ContributionCaps() {
	// At a 10 000 000 gross the retirement contributions blow past the
	// 500 000 ceiling on both sides and are capped there.
	big := suite.employee
	big.BaseSalary = decimal.NewFromInt(10000000)

	result, err := suite.service.Compute(big, "2025-01", decimal.Zero)

	suite.Require().NoError(err)
	suite.True(result.Deduction(domain.DeductionRetirement).Equal(decimal.NewFromInt(500000)))
	suite.True(result.Contribution(domain.ContributionRetirement).Equal(decimal.NewFromInt(500000)))
	// 3% of 10 000 000 is 300 000, under the ceiling: not capped.
	suite.True(result.Deduction(domain.DeductionHealth).Equal(decimal.NewFromInt(300000)))
	// Housing has no ceiling.
	suite.True(result.Contribution(domain.ContributionHousing).Equal(decimal.NewFromInt(100000)))
}

func (suite *PayrollServiceTestSuite) TestCompute_IncomeTaxInUpperBracket() {
	// Gross 2 000 000: IPRES 112 000, CSS 60 000, taxable 1 828 000.
	// Bracket floor 1 500 000 at 30%: 174 000 + 328 000 * 0.30 = 272 400.
	high := suite.employee
	high.BaseSalary = decimal.NewFromInt(2000000)

	result, err := suite.service.Compute(high, "2025-01", decimal.Zero)

	suite.Require().NoError(err)
	suite.True(result.Deduction(domain.DeductionIncomeTax).Equal(decimal.NewFromInt(272400)),
		"income tax was %s", result.Deduction(domain.DeductionIncomeTax))
}

func (suite *PayrollServiceTestSuite) TestCompute_Deterministic() {
	first, err := suite.service.Compute(suite.employee, "2025-01", decimal.NewFromInt(25000))
	suite.Require().NoError(err)
	second, err := suite.service.Compute(suite.employee, "2025-01", decimal.NewFromInt(25000))
	suite.Require().NoError(err)

	suite.True(first.NetSalary.Equal(second.NetSalary))
	suite.True(first.TotalDeductions().Equal(second.TotalDeductions()))
	suite.True(first.TotalContributions().Equal(second.TotalContributions()))
}

func (suite *PayrollServiceTestSuite) TestCompute_MissingEmployeeID() {
	blank := suite.employee
	blank.EmployeeID = ""

	_, err := suite.service.Compute(blank, "2025-01", decimal.Zero)

	suite.Require().ErrorIs(err, services.ErrInvalidEmployee)
}

func (suite *PayrollServiceTestSuite) TestCompute_MissingMatricule() {
	blank := suite.employee
	blank.Matricule = ""

	_, err := suite.service.Compute(blank, "2025-01", decimal.Zero)

	suite.Require().ErrorIs(err, services.ErrMissingEmployeeIdentifier)
}

// --- RunPayroll ---

func (suite *PayrollServiceTestSuite) TestRunPayroll_Success() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).
		Return(&suite.employee, nil).Once()
	suite.mockPayrollRepo.On("FindRunForPeriod", ctx, suite.employee.EmployeeID, "2025-01").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayrollRepo.On("SavePayrollRun", ctx, mock.AnythingOfType("domain.PayrollRun")).Return(nil).Once()
	var recorded domain.AuditLog
	suite.mockAudit.On("RecordAudit", ctx, mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(domain.AuditLog)
		}).Return(nil).Once()

	run, err := suite.service.RunPayroll(ctx, suite.employee.EmployeeID, "2025-01", decimal.Zero, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(run)
	suite.NotEmpty(run.RunID)
	suite.Equal(suite.employee.EmployeeID, run.EmployeeID)
	suite.Equal("2025-01", run.Period)
	suite.True(run.GrossSalary.Equal(decimal.NewFromInt(500000)))
	suite.True(run.RetirementEmployee.Equal(decimal.NewFromInt(28000)))
	suite.True(run.RetirementEmployer.Equal(decimal.NewFromInt(46000)))
	suite.True(run.HealthEmployee.Equal(decimal.NewFromInt(15000)))
	suite.True(run.HealthEmployer.Equal(decimal.NewFromInt(15000)))
	suite.True(run.HousingEmployer.Equal(decimal.NewFromInt(5000)))
	suite.True(run.IncomeTax.Equal(decimal.Zero))
	suite.True(run.FixedLevy.Equal(decimal.NewFromInt(1000)))
	suite.True(run.NetSalary.Equal(decimal.NewFromInt(456000)))
	suite.Equal(suite.actorID, run.CreatedBy)
	suite.NotEmpty(recorded.AuditID)
	suite.Equal(domain.AuditPayrollRun, recorded.Action)

	suite.mockPayrollRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestRunPayroll_InvalidPeriodFormat() {
	ctx := context.Background()

	for _, period := range []string{"2025-13", "2025-0", "202501", "2025/01", "jan-2025", ""} {
		_, err := suite.service.RunPayroll(ctx, suite.employee.EmployeeID, period, decimal.Zero, suite.actorID)
		suite.Require().ErrorIs(err, services.ErrInvalidPeriodFormat, "period %q should be rejected", period)
	}
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestRunPayroll_NegativeBonuses() {
	ctx := context.Background()

	_, err := suite.service.RunPayroll(ctx, suite.employee.EmployeeID, "2025-01", decimal.NewFromInt(-1), suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestRunPayroll_EmployeeNotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, unknownID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RunPayroll(ctx, unknownID, "2025-01", decimal.Zero, suite.actorID)

	suite.Require().ErrorIs(err, services.ErrInvalidEmployee)
}

func (suite *PayrollServiceTestSuite) TestRunPayroll_InactiveEmployee() {
	ctx := context.Background()
	inactive := suite.employee
	inactive.IsActive = false

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, inactive.EmployeeID).
		Return(&inactive, nil).Once()

	_, err := suite.service.RunPayroll(ctx, inactive.EmployeeID, "2025-01", decimal.Zero, suite.actorID)

	suite.Require().ErrorIs(err, services.ErrEmployeeInactive)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "SavePayrollRun", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestRunPayroll_PeriodAlreadyProcessed() {
	ctx := context.Background()
	existing := &domain.PayrollRun{RunID: uuid.NewString(), EmployeeID: suite.employee.EmployeeID, Period: "2025-01"}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).
		Return(&suite.employee, nil).Once()
	suite.mockPayrollRepo.On("FindRunForPeriod", ctx, suite.employee.EmployeeID, "2025-01").
		Return(existing, nil).Once()

	_, err := suite.service.RunPayroll(ctx, suite.employee.EmployeeID, "2025-01", decimal.Zero, suite.actorID)

	suite.Require().ErrorIs(err, services.ErrPeriodAlreadyProcessed)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "SavePayrollRun", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestRunPayroll_ConcurrentDuplicateOnInsert() {
	// The pre-check passes but another run lands first; the unique index
	// violation surfaces as the same already-processed error.
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).
		Return(&suite.employee, nil).Once()
	suite.mockPayrollRepo.On("FindRunForPeriod", ctx, suite.employee.EmployeeID, "2025-01").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayrollRepo.On("SavePayrollRun", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RunPayroll(ctx, suite.employee.EmployeeID, "2025-01", decimal.Zero, suite.actorID)

	suite.Require().ErrorIs(err, services.ErrPeriodAlreadyProcessed)
	suite.mockAudit.AssertNotCalled(suite.T(), "RecordAudit", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestRunPayroll_AuditFailureDoesNotUndoRun() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).
		Return(&suite.employee, nil).Once()
	suite.mockPayrollRepo.On("FindRunForPeriod", ctx, suite.employee.EmployeeID, "2025-01").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayrollRepo.On("SavePayrollRun", ctx, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("RecordAudit", ctx, mock.Anything).Return(apperrors.ErrInternal).Once()

	run, err := suite.service.RunPayroll(ctx, suite.employee.EmployeeID, "2025-01", decimal.Zero, suite.actorID)

	suite.Require().NoError(err)
	suite.NotNil(run)
}

func (suite *PayrollServiceTestSuite) TestGetRunForPeriod() {
	ctx := context.Background()
	existing := &domain.PayrollRun{RunID: uuid.NewString(), EmployeeID: suite.employee.EmployeeID, Period: "2025-01"}

	suite.mockPayrollRepo.On("FindRunForPeriod", ctx, suite.employee.EmployeeID, "2025-01").
		Return(existing, nil).Once()

	run, err := suite.service.GetRunForPeriod(ctx, suite.employee.EmployeeID, "2025-01")

	suite.Require().NoError(err)
	suite.Equal(existing.RunID, run.RunID)
}

func (suite *PayrollServiceTestSuite) TestListRunsByEmployee_DefaultLimit() {
	ctx := context.Background()

	suite.mockPayrollRepo.On("ListRunsByEmployee", ctx, suite.employee.EmployeeID, 24, 0).
		Return([]domain.PayrollRun{}, nil).Once()

	_, err := suite.service.ListRunsByEmployee(ctx, suite.employee.EmployeeID, 0, -5)

	suite.Require().NoError(err)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
