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
	"github.com/M231111107561100/erp-tiin/internal/dto"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  portssvc.EmployeeSvcFacade
	userID   string
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *EmployeeServiceTestSuite) createRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Matricule:  "EMP-0042",
		FirstName:  "Awa",
		LastName:   "Ndiaye",
		Email:      "awa.ndiaye@example.sn",
		Position:   "Comptable",
		Department: "Finance",
		BaseSalary: decimal.NewFromInt(500000),
		HireDate:   time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	suite.NotEmpty(employee.EmployeeID)
	suite.Equal("EMP-0042", employee.Matricule)
	suite.True(employee.IsActive)
	suite.True(employee.BaseSalary.Equal(decimal.NewFromInt(500000)))
	suite.Equal(suite.userID, employee.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NegativeSalary() {
	ctx := context.Background()
	req := suite.createRequest()
	req.BaseSalary = decimal.NewFromInt(-1)

	_, err := suite.service.CreateEmployee(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrNegativeBaseSalary)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DuplicateMatricule() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockRepo.On("SaveEmployee", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateEmployee(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrDuplicateMatricule)
	suite.Contains(err.Error(), "EMP-0042")
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_SalaryChangeOnly() {
	ctx := context.Background()
	existing := &domain.Employee{
		EmployeeID: uuid.NewString(),
		Matricule:  "EMP-0042",
		FirstName:  "Awa",
		LastName:   "Ndiaye",
		BaseSalary: decimal.NewFromInt(500000),
		HireDate:   time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
	raise := decimal.NewFromInt(550000)
	req := dto.UpdateEmployeeRequest{BaseSalary: &raise}

	suite.mockRepo.On("FindEmployeeByID", ctx, existing.EmployeeID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.BaseSalary.Equal(raise) && e.Matricule == "EMP-0042" && e.FirstName == "Awa"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEmployee(ctx, existing.EmployeeID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.BaseSalary.Equal(raise))
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_NegativeSalaryRejected() {
	ctx := context.Background()
	existing := &domain.Employee{EmployeeID: uuid.NewString(), Matricule: "EMP-0042", IsActive: true}
	negative := decimal.NewFromInt(-500)
	req := dto.UpdateEmployeeRequest{BaseSalary: &negative}

	suite.mockRepo.On("FindEmployeeByID", ctx, existing.EmployeeID).Return(existing, nil).Once()

	_, err := suite.service.UpdateEmployee(ctx, existing.EmployeeID, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrNegativeBaseSalary)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestDeactivateEmployee_NotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateEmployee(ctx, employeeID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateEmployee", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_ClampsLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListEmployees", ctx, true, 50, 0).Return([]domain.Employee{}, nil).Once()

	_, err := suite.service.ListEmployees(ctx, true, 500, -1)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
