package models

import (
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

// JournalEntry is the persistence shape of a posted entry. The
// (journal_type, entry_date, sequence) triple is unique in the schema; the
// poster relies on that constraint to detect concurrent numbering races.
type JournalEntry struct {
	EntryID     string          `db:"entry_id"`
	EntryNumber string          `db:"entry_number"`
	Sequence    int             `db:"sequence"`
	EntryDate   time.Time       `db:"entry_date"`
	Reference   string          `db:"reference"`
	Memo        string          `db:"memo"`
	JournalType JournalType     `db:"journal_type"`
	PeriodID    string          `db:"period_id"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
	IsPosted    bool            `db:"is_posted"`
	PostedAt    time.Time       `db:"posted_at"`
	AuditFields
}

// JournalLine is the persistence shape of one line of an entry. Lines are
// owned by their entry and cascade on delete.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountCode string          `db:"account_code"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Auxiliary   string          `db:"auxiliary"`
	CostCenter  string          `db:"cost_center"`
	Description string          `db:"description"`
	LineNumber  int             `db:"line_number"`
}
