package accounting_test

import (
	"testing"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSumDebitsAndCredits(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountCode: "641", Debit: decimal.NewFromInt(500000)},
		{AccountCode: "431", Credit: decimal.NewFromInt(43000)},
		{AccountCode: "447", Credit: decimal.NewFromInt(1000)},
		{AccountCode: "421", Credit: decimal.NewFromInt(456000)},
	}

	assert.True(t, accounting.SumDebits(lines).Equal(decimal.NewFromInt(500000)))
	assert.True(t, accounting.SumCredits(lines).Equal(decimal.NewFromInt(500000)))
}

func TestSumDebits_EmptyLines(t *testing.T) {
	assert.True(t, accounting.SumDebits(nil).Equal(decimal.Zero))
	assert.True(t, accounting.SumCredits(nil).Equal(decimal.Zero))
}

func TestSumDebits_FractionalAmountsAreExact(t *testing.T) {
	lines := []domain.JournalLine{
		{Debit: decimal.RequireFromString("0.1")},
		{Debit: decimal.RequireFromString("0.2")},
	}

	assert.True(t, accounting.SumDebits(lines).Equal(decimal.RequireFromString("0.3")))
}

func TestValidateLine(t *testing.T) {
	tests := []struct {
		name    string
		line    domain.JournalLine
		wantErr bool
	}{
		{
			name:    "debit only",
			line:    domain.JournalLine{LineNumber: 1, Debit: decimal.NewFromInt(100)},
			wantErr: false,
		},
		{
			name:    "credit only",
			line:    domain.JournalLine{LineNumber: 2, Credit: decimal.NewFromInt(100)},
			wantErr: false,
		},
		{
			name:    "both sides set",
			line:    domain.JournalLine{LineNumber: 3, Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(100)},
			wantErr: true,
		},
		{
			name:    "neither side set",
			line:    domain.JournalLine{LineNumber: 4},
			wantErr: true,
		},
		{
			name:    "negative debit",
			line:    domain.JournalLine{LineNumber: 5, Debit: decimal.NewFromInt(-100)},
			wantErr: true,
		},
		{
			name:    "negative credit",
			line:    domain.JournalLine{LineNumber: 6, Credit: decimal.NewFromInt(-100)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEntryBalance(t *testing.T) {
	balanced := []domain.JournalLine{
		{Debit: decimal.NewFromInt(512000)},
		{Credit: decimal.NewFromInt(512000)},
	}
	assert.NoError(t, accounting.ValidateEntryBalance(balanced))

	offByOne := []domain.JournalLine{
		{Debit: decimal.NewFromInt(512000)},
		{Credit: decimal.NewFromInt(511999)},
	}
	err := accounting.ValidateEntryBalance(offByOne)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not balance")
}
