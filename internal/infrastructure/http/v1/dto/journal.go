package dto

import (
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/documents/journal"
)

// CreateJournalVoucherRequest represents a request to create a manual voucher.
type CreateJournalVoucherRequest struct {
	Date          time.Time             `json:"date" binding:"required"`
	VoucherTypeID string                `json:"voucherTypeId" binding:"required"`
	Remarks       string                `json:"remarks,omitempty"`
	Entries       []JournalEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// JournalEntryRequest is one requested debit or credit line. Exactly one
// of debit and credit must be positive.
type JournalEntryRequest struct {
	AccountID string      `json:"accountId" binding:"required"`
	Debit     types.Money `json:"debit"`
	Credit    types.Money `json:"credit"`
	Remarks   string      `json:"remarks,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateJournalVoucherRequest) ToEntity() *journal.JournalVoucher {
	voucherTypeID, _ := id.Parse(r.VoucherTypeID)

	doc := journal.NewJournalVoucher(voucherTypeID)
	doc.Date = r.Date
	doc.Remarks = r.Remarks
	doc.Entries = toEntryInputs(r.Entries)

	return doc
}

// UpdateJournalVoucherRequest represents a request to update a voucher.
type UpdateJournalVoucherRequest struct {
	Date    *time.Time            `json:"date,omitempty"`
	Remarks *string               `json:"remarks,omitempty"`
	Entries []JournalEntryRequest `json:"entries,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateJournalVoucherRequest) ApplyTo(doc *journal.JournalVoucher) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.Remarks != nil {
		doc.Remarks = *r.Remarks
	}
	if r.Entries != nil {
		doc.Entries = toEntryInputs(r.Entries)
	}
}

// RecoverJournalVoucherRequest re-posts a deleted voucher. The entries must
// be resupplied because unposting deactivated the stored set.
type RecoverJournalVoucherRequest struct {
	Entries []JournalEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// ToEntryInputs converts request entries to domain inputs.
func (r *RecoverJournalVoucherRequest) ToEntryInputs() []journal.EntryInput {
	return toEntryInputs(r.Entries)
}

func toEntryInputs(entries []JournalEntryRequest) []journal.EntryInput {
	inputs := make([]journal.EntryInput, 0, len(entries))
	for _, e := range entries {
		accountID, _ := id.Parse(e.AccountID)
		inputs = append(inputs, journal.EntryInput{
			AccountID: accountID,
			Debit:     e.Debit,
			Credit:    e.Credit,
			Remarks:   e.Remarks,
		})
	}
	return inputs
}
