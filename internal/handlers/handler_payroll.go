package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/core/services"
	"github.com/M231111107561100/erp-tiin/internal/dto"
	"github.com/M231111107561100/erp-tiin/internal/middleware"
)

// payrollHandler handles HTTP requests related to payroll runs.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

// newPayrollHandler creates a new payrollHandler.
func newPayrollHandler(payrollService portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{
		payrollService: payrollService,
	}
}

// RegisterPayrollRoutes registers payroll routes nested under employees.
func RegisterPayrollRoutes(group *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payroll := group.Group("/employees/:employeeID/payroll")
	{
		payroll.POST("", h.runPayroll)
		payroll.GET("", h.listRuns)
		payroll.GET("/:period", h.getRun)
	}

	group.GET("/payroll/runs/:runID", h.getRunByID)
}

// runPayroll godoc
// @Summary Run payroll for an employee
// @Description Computes gross-to-net for one month and appends the run. A period can only be processed once per employee.
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   run body dto.RunPayrollRequest true "Period and bonuses"
// @Success 201 {object} dto.PayrollRunResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Period already processed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/payroll [post]
func (h *payrollHandler) runPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for runPayroll", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	run, err := h.payrollService.RunPayroll(c.Request.Context(), employeeID, req.Period, req.Bonuses, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPeriodFormat),
			errors.Is(err, services.ErrEmployeeInactive),
			errors.Is(err, services.ErrMissingEmployeeIdentifier),
			errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error running payroll", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrPeriodAlreadyProcessed):
			logger.Warn("Payroll period already processed", slog.String("employee_id", employeeID), slog.String("period", req.Period))
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidEmployee), errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		default:
			logger.Error("Failed to run payroll", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to run payroll"})
		}
		return
	}

	logger.Info("Payroll run recorded", slog.String("run_id", run.RunID), slog.String("employee_id", employeeID), slog.String("period", run.Period))
	c.JSON(http.StatusCreated, dto.ToPayrollRunResponse(run))
}

// getRun godoc
// @Summary Get a payroll run
// @Description Retrieves the payroll run for one employee and month
// @Tags payroll
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   period path string true "Period (YYYY-MM)"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 404 {object} ErrorResponse "Run not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/payroll/{period} [get]
func (h *payrollHandler) getRun(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")
	period := c.Param("period")

	run, err := h.payrollService.GetRunForPeriod(c.Request.Context(), employeeID, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payroll run not found"})
			return
		}
		logger.Error("Failed to get payroll run", slog.String("error", err.Error()), slog.String("employee_id", employeeID), slog.String("period", period))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payroll run"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run))
}

// getRunByID godoc
// @Summary Get a payroll run by ID
// @Description Retrieves a single payroll run by its identifier
// @Tags payroll
// @Produce  json
// @Param   runID path string true "Run ID"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 404 {object} ErrorResponse "Run not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/runs/{runID} [get]
func (h *payrollHandler) getRunByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	runID := c.Param("runID")

	run, err := h.payrollService.GetRunByID(c.Request.Context(), runID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payroll run not found"})
			return
		}
		logger.Error("Failed to get payroll run", slog.String("error", err.Error()), slog.String("run_id", runID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payroll run"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run))
}

// listRuns godoc
// @Summary List payroll runs for an employee
// @Description Retrieves an employee's payroll history ordered by period descending
// @Tags payroll
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.PayrollRunResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/payroll [get]
func (h *payrollHandler) listRuns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var params dto.ListPayrollRunsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	runs, err := h.payrollService.ListRunsByEmployee(c.Request.Context(), employeeID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list payroll runs", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payroll runs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPayrollRunResponse(runs))
}
