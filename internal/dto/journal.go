package dto

import (
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineSpec is one debit/credit line of a posting command.
// Exactly one of Debit/Credit must be nonzero; both must be >= 0.
type LineSpec struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Auxiliary   string          `json:"auxiliary"`
	CostCenter  string          `json:"costCenter"`
	Description string          `json:"description"`
}

// PostEntryCommand carries everything needed to post one journal entry.
// PostedBy is filled from the authenticated context by the handler, never by
// the client.
type PostEntryCommand struct {
	EntryDate   time.Time          `json:"entryDate" binding:"required"`
	Reference   string             `json:"reference"`
	Memo        string             `json:"memo"`
	JournalType domain.JournalType `json:"journalType" binding:"required,oneof=General Sales Purchase Cash Bank"`
	PeriodID    string             `json:"periodID"` // Optional: explicit target period
	Lines       []LineSpec         `json:"lines" binding:"required,min=2,dive"`
	PostedBy    string             `json:"-"`
}

// JournalLineResponse defines the data returned for one entry line.
type JournalLineResponse struct {
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Auxiliary   string          `json:"auxiliary,omitempty"`
	CostCenter  string          `json:"costCenter,omitempty"`
	Description string          `json:"description,omitempty"`
	LineNumber  int             `json:"lineNumber"`
}

// JournalEntryResponse defines the data returned for a posted entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	EntryNumber string                `json:"entryNumber"`
	EntryDate   time.Time             `json:"entryDate"`
	Reference   string                `json:"reference"`
	Memo        string                `json:"memo"`
	JournalType domain.JournalType    `json:"journalType"`
	PeriodID    string                `json:"periodID"`
	TotalDebit  decimal.Decimal       `json:"totalDebit"`
	TotalCredit decimal.Decimal       `json:"totalCredit"`
	PostedAt    time.Time             `json:"postedAt"`
	PostedBy    string                `json:"postedBy"`
	Lines       []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:     e.EntryID,
		EntryNumber: e.EntryNumber,
		EntryDate:   e.EntryDate,
		Reference:   e.Reference,
		Memo:        e.Memo,
		JournalType: e.JournalType,
		PeriodID:    e.PeriodID,
		TotalDebit:  e.TotalDebit,
		TotalCredit: e.TotalCredit,
		PostedAt:    e.PostedAt,
		PostedBy:    e.CreatedBy,
	}
	for _, line := range e.Lines {
		resp.Lines = append(resp.Lines, JournalLineResponse{
			AccountCode: line.AccountCode,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Auxiliary:   line.Auxiliary,
			CostCenter:  line.CostCenter,
			Description: line.Description,
			LineNumber:  line.LineNumber,
		})
	}
	return resp
}

// ToJournalEntryResponses converts a slice of entries to response DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	PeriodID string `form:"periodID" binding:"required"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}
