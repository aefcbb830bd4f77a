package journal

import (
	"context"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
)

// Repository defines operations for voucher headers.
// Entries are stored in the accounting register, so there are no line
// operations here.
type Repository interface {
	Create(ctx context.Context, doc *JournalVoucher) error
	GetByID(ctx context.Context, docID id.ID) (*JournalVoucher, error)
	GetByNumber(ctx context.Context, number string) (*JournalVoucher, error)
	Update(ctx context.Context, doc *JournalVoucher) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*JournalVoucher], error)
}

// ListFilter for filtering vouchers.
type ListFilter struct {
	domain.ListFilter

	VoucherTypeID *id.ID
	DateFrom      *time.Time
	DateTo        *time.Time
}
