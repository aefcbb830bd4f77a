// Package journal provides the JournalVoucher document.
// A voucher is a manual, balanced set of debit/credit entries. The entries
// themselves live only in the accounting register; the voucher header
// carries the type scope and the number.
package journal

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/posting"
	"bakehouse/internal/domain/registers/ledger"
)

// JournalVoucher represents a manual accounting voucher.
type JournalVoucher struct {
	entity.Document

	// VoucherTypeID scopes the number series
	VoucherTypeID id.ID `db:"voucher_type_id" json:"voucherTypeId"`

	// Entries is the balanced debit/credit set. Stored in the accounting
	// register, not in a voucher lines table.
	Entries []EntryInput `db:"-" json:"entries"`
}

// EntryInput is one requested debit or credit line.
type EntryInput struct {
	AccountID id.ID       `json:"accountId"`
	Debit     types.Money `json:"debit"`
	Credit    types.Money `json:"credit"`
	Remarks   string      `json:"remarks,omitempty"`
}

// NewJournalVoucher creates a new voucher document.
func NewJournalVoucher(voucherTypeID id.ID) *JournalVoucher {
	return &JournalVoucher{
		Document:      entity.NewDocument(),
		VoucherTypeID: voucherTypeID,
		Entries:       make([]EntryInput, 0),
	}
}

// AddDebit appends a debit line.
func (j *JournalVoucher) AddDebit(accountID id.ID, amount types.Money, remarks string) {
	j.Entries = append(j.Entries, EntryInput{
		AccountID: accountID,
		Debit:     amount,
		Credit:    types.Zero(),
		Remarks:   remarks,
	})
}

// AddCredit appends a credit line.
func (j *JournalVoucher) AddCredit(accountID id.ID, amount types.Money, remarks string) {
	j.Entries = append(j.Entries, EntryInput{
		AccountID: accountID,
		Debit:     types.Zero(),
		Credit:    amount,
		Remarks:   remarks,
	})
}

// buildPosting assembles the register posting for this voucher.
func (j *JournalVoucher) buildPosting() *ledger.Posting {
	post := ledger.NewPosting(ledger.RefJournalVoucher, j.ID, j.Number, j.Date)
	typeID := j.VoucherTypeID
	post.VoucherTypeID = &typeID
	for _, e := range j.Entries {
		post.AddEntry(e.AccountID, e.Debit, e.Credit, e.Remarks)
	}
	return post
}

// Validate implements entity.Validatable. The double-entry invariants are
// enforced by building the posting and validating it, so a voucher can never
// pass validation and still fail to post.
func (j *JournalVoucher) Validate(ctx context.Context) error {
	if err := j.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(j.VoucherTypeID) {
		return apperror.NewValidation("voucher type is required").
			WithDetail("field", "voucherTypeId")
	}

	return j.buildPosting().Validate(ctx)
}

// DocumentType implements posting.Postable.
func (j *JournalVoucher) DocumentType() string {
	return DocumentType
}

// LedgerPosting implements posting.LedgerSource.
func (j *JournalVoucher) LedgerPosting(ctx context.Context) (*ledger.Posting, error) {
	return j.buildPosting(), nil
}

// Ensure interface compliance at compile time.
var (
	_ posting.Postable     = (*JournalVoucher)(nil)
	_ posting.LedgerSource = (*JournalVoucher)(nil)
)
