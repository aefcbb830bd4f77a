// Package ledger provides the double-entry accounting register.
// Every posted document writes a balanced set of debit/credit entries here;
// manual journal vouchers write entries directly.
package ledger

import (
	"context"
	"time"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

// ReferenceType names the document kind a posting was generated from.
type ReferenceType string

const (
	RefPurchase          ReferenceType = "purchase"
	RefKitchenIssue      ReferenceType = "kitchen_issue"
	RefKitchenProduction ReferenceType = "kitchen_production"
	RefSale              ReferenceType = "sale"
	RefSaleReturn        ReferenceType = "sale_return"
	RefJournalVoucher    ReferenceType = "journal_voucher"
)

// Posting is the header of one balanced entry set.
type Posting struct {
	entity.Document

	// VoucherTypeID is set for manual journal vouchers only
	VoucherTypeID *id.ID `db:"voucher_type_id" json:"voucherTypeId,omitempty"`

	// ReferenceType names the source document kind
	ReferenceType ReferenceType `db:"reference_type" json:"referenceType"`

	// ReferenceID is the source document ID
	ReferenceID id.ID `db:"reference_id" json:"referenceId"`

	// ReferenceNo is the source transaction number. Stable across edits even
	// though each re-post writes a fresh posting row.
	ReferenceNo string `db:"reference_no" json:"referenceNo"`

	// Entries is the balanced debit/credit set (not a db column)
	Entries []Entry `db:"-" json:"entries"`
}

// Entry is one debit or credit line of a posting.
// Exactly one of Debit and Credit is non-zero.
type Entry struct {
	LineID    id.ID       `db:"line_id" json:"lineId"`
	PostingID id.ID       `db:"posting_id" json:"postingId"`
	LineNo    int         `db:"line_no" json:"lineNo"`
	AccountID id.ID       `db:"account_id" json:"accountId"`
	Debit     types.Money `db:"debit" json:"debit"`
	Credit    types.Money `db:"credit" json:"credit"`
	Remarks   string      `db:"remarks" json:"remarks,omitempty"`
	Active    bool        `db:"active" json:"active"`
}

// NewPosting creates a posting header for a source document.
func NewPosting(refType ReferenceType, refID id.ID, refNo string, date time.Time) *Posting {
	p := &Posting{
		Document:      entity.NewDocument(),
		ReferenceType: refType,
		ReferenceID:   refID,
		ReferenceNo:   refNo,
	}
	p.Date = date
	p.Number = refNo
	return p
}

// AddEntry appends a line. Pass zero for the unused side.
func (p *Posting) AddEntry(accountID id.ID, debit, credit types.Money, remarks string) {
	p.Entries = append(p.Entries, Entry{
		LineID:    id.New(),
		PostingID: p.ID,
		LineNo:    len(p.Entries) + 1,
		AccountID: accountID,
		Debit:     debit,
		Credit:    credit,
		Remarks:   remarks,
		Active:    true,
	})
}

// Debit appends a debit line.
func (p *Posting) Debit(accountID id.ID, amount types.Money, remarks string) {
	p.AddEntry(accountID, amount, types.Zero(), remarks)
}

// Credit appends a credit line.
func (p *Posting) Credit(accountID id.ID, amount types.Money, remarks string) {
	p.AddEntry(accountID, types.Zero(), amount, remarks)
}

// Totals returns the debit and credit sums over all entries.
func (p *Posting) Totals() (debit, credit types.Money) {
	debit, credit = types.Zero(), types.Zero()
	for _, e := range p.Entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// Validate implements entity.Validatable. It enforces the double-entry
// invariants before anything touches storage: at least two lines, each line
// strictly debit or credit, and equal totals.
func (p *Posting) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if !isValidReferenceType(p.ReferenceType) {
		return apperror.NewValidation("invalid reference type").
			WithDetail("field", "referenceType").
			WithDetail("value", string(p.ReferenceType))
	}

	if len(p.Entries) < 2 {
		return apperror.NewValidation("posting requires at least two entries").
			WithDetail("field", "entries")
	}

	for i, e := range p.Entries {
		if id.IsNil(e.AccountID) {
			return apperror.NewValidation("entry account is required").
				WithDetail("lineNo", i+1)
		}
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return apperror.NewValidation("entry amounts cannot be negative").
				WithDetail("lineNo", i+1)
		}
		debitSet := !e.Debit.IsZero()
		creditSet := !e.Credit.IsZero()
		if debitSet == creditSet {
			return apperror.NewValidation("entry must be strictly debit or credit").
				WithDetail("lineNo", i+1)
		}
	}

	debit, credit := p.Totals()
	if !debit.Equal(credit) {
		return apperror.NewUnbalancedPosting(debit.String(), credit.String())
	}

	return nil
}

func isValidReferenceType(t ReferenceType) bool {
	switch t {
	case RefPurchase, RefKitchenIssue, RefKitchenProduction, RefSale, RefSaleReturn, RefJournalVoucher:
		return true
	}
	return false
}
