package domain_test

import (
	"testing"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayrollSchedule_IncomeTax(t *testing.T) {
	schedule := domain.SenegalSchedule2025()

	tests := []struct {
		name    string
		taxable decimal.Decimal
		want    decimal.Decimal
	}{
		{
			name:    "zero taxable income",
			taxable: decimal.Zero,
			want:    decimal.Zero,
		},
		{
			name:    "negative taxable income",
			taxable: decimal.NewFromInt(-10000),
			want:    decimal.Zero,
		},
		{
			name:    "inside the zero-rate bracket",
			taxable: decimal.NewFromInt(457000),
			want:    decimal.Zero,
		},
		{
			name:    "just below the first taxed floor",
			taxable: decimal.NewFromInt(629999),
			want:    decimal.Zero,
		},
		{
			name:    "exactly on the first taxed floor",
			taxable: decimal.NewFromInt(630000),
			want:    decimal.Zero,
		},
		{
			name:    "marginal income above 630000 taxed at 20 percent",
			taxable: decimal.NewFromInt(1000000),
			want:    decimal.NewFromInt(74000),
		},
		{
			name:    "exactly on the 1500000 floor pays the cumulative",
			taxable: decimal.NewFromInt(1500000),
			want:    decimal.NewFromInt(174000),
		},
		{
			name:    "inside the 30 percent bracket",
			taxable: decimal.NewFromInt(1828000),
			want:    decimal.NewFromInt(272400),
		},
		{
			name:    "exactly on the 4000000 floor",
			taxable: decimal.NewFromInt(4000000),
			want:    decimal.NewFromInt(924000),
		},
		{
			name:    "inside the 36 percent bracket",
			taxable: decimal.NewFromInt(5000000),
			want:    decimal.NewFromInt(1284000),
		},
		{
			name:    "top bracket at 40 percent",
			taxable: decimal.NewFromInt(10000000),
			want:    decimal.NewFromInt(3164000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.IncomeTax(tt.taxable)
			assert.True(t, got.Equal(tt.want), "want %s, got %s", tt.want, got)
		})
	}
}

func TestPayrollSchedule_IncomeTax_EmptyBrackets(t *testing.T) {
	schedule := domain.PayrollSchedule{}

	got := schedule.IncomeTax(decimal.NewFromInt(1000000))

	assert.True(t, got.Equal(decimal.Zero))
}

func TestPayrollSchedule_IncomeTax_UnsortedBrackets(t *testing.T) {
	// Selection must not depend on declaration order.
	schedule := domain.SenegalSchedule2025()
	brackets := schedule.Brackets
	brackets[0], brackets[len(brackets)-1] = brackets[len(brackets)-1], brackets[0]
	schedule.Brackets = brackets

	got := schedule.IncomeTax(decimal.NewFromInt(1000000))

	assert.True(t, got.Equal(decimal.NewFromInt(74000)), "got %s", got)
}

func TestPayrollSchedule_Compute(t *testing.T) {
	schedule := domain.SenegalSchedule2025()
	employee := domain.Employee{
		EmployeeID: "emp-1",
		Matricule:  "EMP-0001",
		FirstName:  "Moussa",
		LastName:   "Fall",
		BaseSalary: decimal.NewFromInt(500000),
		IsActive:   true,
	}

	result := schedule.Compute(employee, "2025-01", decimal.Zero)

	assert.True(t, result.GrossSalary.Equal(decimal.NewFromInt(500000)))
	assert.True(t, result.Deduction(domain.DeductionRetirement).Equal(decimal.NewFromInt(28000)))
	assert.True(t, result.Deduction(domain.DeductionHealth).Equal(decimal.NewFromInt(15000)))
	assert.True(t, result.Deduction(domain.DeductionIncomeTax).Equal(decimal.Zero))
	assert.True(t, result.Deduction(domain.DeductionFixedLevy).Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Contribution(domain.ContributionRetirement).Equal(decimal.NewFromInt(46000)))
	assert.True(t, result.Contribution(domain.ContributionHealth).Equal(decimal.NewFromInt(15000)))
	assert.True(t, result.Contribution(domain.ContributionHousing).Equal(decimal.NewFromInt(5000)))
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(456000)), "net was %s", result.NetSalary)
}

func TestPayrollSchedule_Compute_NetPlusDeductionsEqualsGross(t *testing.T) {
	schedule := domain.SenegalSchedule2025()

	for _, salary := range []int64{0, 100000, 500000, 1000000, 2500000, 12000000} {
		employee := domain.Employee{
			EmployeeID: "emp-1",
			Matricule:  "EMP-0001",
			BaseSalary: decimal.NewFromInt(salary),
		}

		result := schedule.Compute(employee, "2025-06", decimal.Zero)

		reassembled := result.NetSalary.Add(result.TotalDeductions())
		assert.True(t, reassembled.Equal(result.GrossSalary),
			"salary %d: net %s + deductions %s != gross %s",
			salary, result.NetSalary, result.TotalDeductions(), result.GrossSalary)
	}
}

func TestPayrollSchedule_Compute_TrimfOutsideTaxable(t *testing.T) {
	// The fixed levy must not shrink taxable income: two schedules differing
	// only in the levy produce the same income tax.
	withLevy := domain.SenegalSchedule2025()
	withoutLevy := domain.SenegalSchedule2025()
	withoutLevy.FixedLevy = decimal.Zero

	employee := domain.Employee{
		EmployeeID: "emp-1",
		Matricule:  "EMP-0001",
		BaseSalary: decimal.NewFromInt(1200000),
	}

	a := withLevy.Compute(employee, "2025-01", decimal.Zero)
	b := withoutLevy.Compute(employee, "2025-01", decimal.Zero)

	assert.True(t, a.Deduction(domain.DeductionIncomeTax).Equal(b.Deduction(domain.DeductionIncomeTax)))
	assert.True(t, a.NetSalary.Add(withLevy.FixedLevy).Equal(b.NetSalary))
}

func TestCapped(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		cap    decimal.Decimal
		want   decimal.Decimal
	}{
		{
			name:   "under the cap",
			amount: decimal.NewFromInt(300000),
			cap:    decimal.NewFromInt(500000),
			want:   decimal.NewFromInt(300000),
		},
		{
			name:   "over the cap",
			amount: decimal.NewFromInt(560000),
			cap:    decimal.NewFromInt(500000),
			want:   decimal.NewFromInt(500000),
		},
		{
			name:   "exactly at the cap",
			amount: decimal.NewFromInt(500000),
			cap:    decimal.NewFromInt(500000),
			want:   decimal.NewFromInt(500000),
		},
	}

	schedule := domain.SenegalSchedule2025()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Exercised through Compute: set the retirement rate to 100% so
			// the contribution equals the gross, then cap it.
			s := schedule
			s.RetirementEmployeeRate = decimal.NewFromInt(1)
			s.RetirementCap = tt.cap
			employee := domain.Employee{EmployeeID: "e", Matricule: "m", BaseSalary: tt.amount}

			result := s.Compute(employee, "2025-01", decimal.Zero)

			assert.True(t, result.Deduction(domain.DeductionRetirement).Equal(tt.want))
		})
	}
}

func TestPayrollSchedule_Compute_UncappedWhenCapIsZero(t *testing.T) {
	schedule := domain.SenegalSchedule2025()
	schedule.RetirementCap = decimal.Zero

	employee := domain.Employee{
		EmployeeID: "emp-1",
		Matricule:  "EMP-0001",
		BaseSalary: decimal.NewFromInt(20000000),
	}

	result := schedule.Compute(employee, "2025-01", decimal.Zero)

	// 5.6% of 20 000 000 with no ceiling.
	assert.True(t, result.Deduction(domain.DeductionRetirement).Equal(decimal.NewFromInt(1120000)))
}
