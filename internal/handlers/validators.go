package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var payrollPeriodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// RegisterCustomValidations hooks domain-specific rules into gin's binding
// validator so malformed payloads are rejected before reaching a service.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("payrollperiod", func(fl validator.FieldLevel) bool {
		return payrollPeriodPattern.MatchString(fl.Field().String())
	})
}
