package accounting

import (
	"fmt"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumDebits returns the exact sum of the debit side of a set of lines.
func SumDebits(lines []domain.JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Debit)
	}
	return total
}

// SumCredits returns the exact sum of the credit side of a set of lines.
func SumCredits(lines []domain.JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Credit)
	}
	return total
}

// ValidateLine checks the line-level double-entry discipline: both amounts
// non-negative and exactly one of debit/credit nonzero.
func ValidateLine(line domain.JournalLine) error {
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return fmt.Errorf("line %d: amounts must not be negative", line.LineNumber)
	}
	debitSet := line.Debit.IsPositive()
	creditSet := line.Credit.IsPositive()
	if debitSet == creditSet {
		return fmt.Errorf("line %d: exactly one of debit or credit must be nonzero", line.LineNumber)
	}
	return nil
}

// ValidateEntryBalance checks that the lines of an entry balance exactly.
// The comparison uses exact decimal equality, no rounding tolerance.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	debits := SumDebits(lines)
	credits := SumCredits(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("entry does not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}
