package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TaxBracket is one row of a progressive income-tax table in cumulative form.
// Floor is the lower bound of taxable income for the bracket, Rate the
// marginal rate applied above the floor, and Cumulative the total tax owed at
// exactly the floor. Brackets are kept sorted by ascending floor; selection is
// half-open: taxable income exactly on a floor uses that bracket.
type TaxBracket struct {
	Floor      decimal.Decimal `json:"floor"`
	Rate       decimal.Decimal `json:"rate"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// PayrollSchedule is a jurisdiction's statutory rates, caps and tax table.
// It is plain data so a new fiscal year is a new value, not new code.
type PayrollSchedule struct {
	Jurisdiction           string          `json:"jurisdiction"`
	Year                   int             `json:"year"`
	RetirementEmployeeRate decimal.Decimal `json:"retirementEmployeeRate"`
	RetirementEmployerRate decimal.Decimal `json:"retirementEmployerRate"`
	RetirementCap          decimal.Decimal `json:"retirementCap"` // Cap on the contribution amount
	HealthRate             decimal.Decimal `json:"healthRate"`    // Same rate both sides
	HealthCap              decimal.Decimal `json:"healthCap"`
	HousingRate            decimal.Decimal `json:"housingRate"` // Employer only, uncapped
	FixedLevy              decimal.Decimal `json:"fixedLevy"`   // Flat employee levy (TRIMF), outside taxable income
	Brackets               []TaxBracket    `json:"brackets"`    // Ascending by Floor; first floor is zero
}

// SenegalSchedule2025 returns the canonical Senegal 2025 schedule.
func SenegalSchedule2025() PayrollSchedule {
	return PayrollSchedule{
		Jurisdiction:           "SN",
		Year:                   2025,
		RetirementEmployeeRate: decimal.RequireFromString("0.056"),
		RetirementEmployerRate: decimal.RequireFromString("0.092"),
		RetirementCap:          decimal.NewFromInt(500000),
		HealthRate:             decimal.RequireFromString("0.03"),
		HealthCap:              decimal.NewFromInt(500000),
		HousingRate:            decimal.RequireFromString("0.01"),
		FixedLevy:              decimal.NewFromInt(1000),
		Brackets: []TaxBracket{
			{Floor: decimal.Zero, Rate: decimal.Zero, Cumulative: decimal.Zero},
			{Floor: decimal.NewFromInt(630000), Rate: decimal.RequireFromString("0.20"), Cumulative: decimal.Zero},
			{Floor: decimal.NewFromInt(1500000), Rate: decimal.RequireFromString("0.30"), Cumulative: decimal.NewFromInt(174000)},
			{Floor: decimal.NewFromInt(4000000), Rate: decimal.RequireFromString("0.36"), Cumulative: decimal.NewFromInt(924000)},
			{Floor: decimal.NewFromInt(8000000), Rate: decimal.RequireFromString("0.40"), Cumulative: decimal.NewFromInt(2364000)},
		},
	}
}

// IncomeTax computes the progressive tax on taxable income: the applicable
// bracket is the one with the highest floor not exceeding taxable income, and
// tax = cumulative + (taxable - floor) * rate, clamped at zero.
func (s PayrollSchedule) IncomeTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if len(s.Brackets) == 0 || taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	brackets := make([]TaxBracket, len(s.Brackets))
	copy(brackets, s.Brackets)
	sort.Slice(brackets, func(i, j int) bool {
		return brackets[i].Floor.LessThan(brackets[j].Floor)
	})

	bracket := brackets[0]
	for _, b := range brackets[1:] {
		if b.Floor.GreaterThan(taxableIncome) {
			break
		}
		bracket = b
	}

	tax := bracket.Cumulative.Add(taxableIncome.Sub(bracket.Floor).Mul(bracket.Rate))
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// capped returns amount limited to cap; a non-positive cap means uncapped.
func capped(amount, cap decimal.Decimal) decimal.Decimal {
	if cap.IsPositive() && amount.GreaterThan(cap) {
		return cap
	}
	return amount
}

// Compute derives gross salary, statutory deductions and contributions, and
// net salary for one employee snapshot. It reads no state besides the
// schedule itself.
func (s PayrollSchedule) Compute(employee Employee, period string, bonuses decimal.Decimal) PayrollResult {
	gross := employee.BaseSalary.Add(bonuses)

	retirementEmployee := capped(gross.Mul(s.RetirementEmployeeRate), s.RetirementCap)
	retirementEmployer := capped(gross.Mul(s.RetirementEmployerRate), s.RetirementCap)
	healthEmployee := capped(gross.Mul(s.HealthRate), s.HealthCap)
	healthEmployer := capped(gross.Mul(s.HealthRate), s.HealthCap)
	housingEmployer := gross.Mul(s.HousingRate)

	taxable := gross.Sub(retirementEmployee).Sub(healthEmployee)
	incomeTax := s.IncomeTax(taxable)

	result := PayrollResult{
		EmployeeID:   employee.EmployeeID,
		EmployeeName: employee.FullName(),
		Matricule:    employee.Matricule,
		Period:       period,
		BaseSalary:   employee.BaseSalary,
		Bonuses:      bonuses,
		GrossSalary:  gross,
		Deductions: []PayrollLine{
			{Name: DeductionRetirement, Amount: retirementEmployee},
			{Name: DeductionHealth, Amount: healthEmployee},
			{Name: DeductionIncomeTax, Amount: incomeTax},
			{Name: DeductionFixedLevy, Amount: s.FixedLevy},
		},
		Contributions: []PayrollLine{
			{Name: ContributionRetirement, Amount: retirementEmployer},
			{Name: ContributionHealth, Amount: healthEmployer},
			{Name: ContributionHousing, Amount: housingEmployer},
		},
	}
	result.NetSalary = gross.Sub(result.TotalDeductions())
	return result
}
