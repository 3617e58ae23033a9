package mapping

import (
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
// Lines are mapped separately; the model carries only the header.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryNumber: d.EntryNumber,
		Sequence:    d.Sequence,
		EntryDate:   d.EntryDate,
		Reference:   d.Reference,
		Memo:        d.Memo,
		JournalType: models.JournalType(d.JournalType),
		PeriodID:    d.PeriodID,
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		IsPosted:    d.IsPosted,
		PostedAt:    d.PostedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryNumber: m.EntryNumber,
		Sequence:    m.Sequence,
		EntryDate:   m.EntryDate,
		Reference:   m.Reference,
		Memo:        m.Memo,
		JournalType: domain.JournalType(m.JournalType),
		PeriodID:    m.PeriodID,
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		IsPosted:    m.IsPosted,
		PostedAt:    m.PostedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountCode: d.AccountCode,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Auxiliary:   d.Auxiliary,
		CostCenter:  d.CostCenter,
		Description: d.Description,
		LineNumber:  d.LineNumber,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Auxiliary:   m.Auxiliary,
		CostCenter:  m.CostCenter,
		Description: m.Description,
		LineNumber:  m.LineNumber,
	}
}
