package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalType identifies the journal an entry belongs to.
type JournalType string

const (
	JournalGeneral  JournalType = "General"
	JournalSales    JournalType = "Sales"
	JournalPurchase JournalType = "Purchase"
	JournalCash     JournalType = "Cash"
	JournalBank     JournalType = "Bank"
)

// Prefix returns the entry-number prefix for the journal type.
// Unknown types fall back to the general journal.
func (t JournalType) Prefix() string {
	switch t {
	case JournalSales:
		return "SJ"
	case JournalPurchase:
		return "PJ"
	case JournalCash:
		return "CJ"
	case JournalBank:
		return "BJ"
	default:
		return "GJ"
	}
}

// IsValid reports whether t is one of the known journal types.
func (t JournalType) IsValid() bool {
	switch t {
	case JournalGeneral, JournalSales, JournalPurchase, JournalCash, JournalBank:
		return true
	}
	return false
}

// FormatEntryNumber builds the human-readable entry number for a journal type,
// entry date and per-day sequence, e.g. "SJ-20250115-0001".
func FormatEntryNumber(journalType JournalType, date time.Time, sequence int) string {
	return fmt.Sprintf("%s-%s-%04d", journalType.Prefix(), date.Format("20060102"), sequence)
}

// JournalEntry is a posted, immutable double-entry transaction. TotalDebit and
// TotalCredit are sums over the owned lines and must be exactly equal.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`     // Primary key (UUID)
	EntryNumber string          `json:"entryNumber"` // e.g. "GJ-20250115-0001"
	Sequence    int             `json:"sequence"`    // Per (journalType, entryDate) sequence, 1-based
	EntryDate   time.Time       `json:"entryDate"`
	Reference   string          `json:"reference"`
	Memo        string          `json:"memo"`
	JournalType JournalType     `json:"journalType"`
	PeriodID    string          `json:"periodID"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	IsPosted    bool            `json:"isPosted"`
	PostedAt    time.Time       `json:"postedAt"`
	Lines       []JournalLine   `json:"lines,omitempty"` // Often loaded separately
	AuditFields
}

// IsBalanced reports whether total debits exactly equal total credits.
// Comparison is exact decimal equality, no tolerance.
func (e JournalEntry) IsBalanced() bool {
	return e.TotalDebit.Equal(e.TotalCredit)
}

// JournalLine is a single debit or credit against one account within an entry.
type JournalLine struct {
	LineID      string          `json:"lineID"` // Primary key (UUID)
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`  // >= 0
	Credit      decimal.Decimal `json:"credit"` // >= 0
	Auxiliary   string          `json:"auxiliary,omitempty"`
	CostCenter  string          `json:"costCenter,omitempty"`
	Description string          `json:"description,omitempty"`
	LineNumber  int             `json:"lineNumber"` // 1-based insertion order
}
