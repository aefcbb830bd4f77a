package ledger

import (
	"context"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

// Repository defines operations for the accounting register.
type Repository interface {
	// CreatePosting inserts a posting header and its entries.
	CreatePosting(ctx context.Context, posting *Posting) error

	// GetPostingByID retrieves a posting with its entries.
	GetPostingByID(ctx context.Context, postingID id.ID) (*Posting, error)

	// FindActiveByReference retrieves the active posting for a source
	// document, if any.
	FindActiveByReference(ctx context.Context, refID id.ID) (*Posting, error)

	// DeactivateByReference soft deletes the posting set for a source
	// document. Returns the deactivated posting, or nil when none existed.
	DeactivateByReference(ctx context.Context, refID id.ID) (*Posting, error)

	// AccountEntries lists active entries for an account over a period.
	AccountEntries(ctx context.Context, accountID id.ID, filter EntryFilter) ([]AccountEntry, error)

	// AccountBalance computes the net debit-minus-credit balance for an
	// account as of a date.
	AccountBalance(ctx context.Context, accountID id.ID, asOf time.Time) (types.Money, error)

	// TrialBalance computes per-account debit/credit totals over a period.
	TrialBalance(ctx context.Context, from, to time.Time) ([]TrialBalanceRow, error)
}

// EntryFilter bounds an account statement query.
type EntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// AccountEntry is one statement row: an entry joined with its posting header.
type AccountEntry struct {
	Entry

	PostingDate   time.Time     `db:"date" json:"postingDate"`
	ReferenceType ReferenceType `db:"reference_type" json:"referenceType"`
	ReferenceNo   string        `db:"reference_no" json:"referenceNo"`
}

// TrialBalanceRow holds per-account totals for a period.
type TrialBalanceRow struct {
	AccountID   id.ID       `db:"account_id" json:"accountId"`
	TotalDebit  types.Money `db:"total_debit" json:"totalDebit"`
	TotalCredit types.Money `db:"total_credit" json:"totalCredit"`
}
