package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"bakehouse/internal/domain"
	"bakehouse/internal/domain/documents/journal"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const journalVouchersTable = "doc_journal_vouchers"

// JournalRepo implements journal.Repository. Vouchers are header-only, the
// entries live in the accounting register.
type JournalRepo struct {
	*BaseDocumentRepo[*journal.JournalVoucher]
}

// NewJournalRepo creates a new journal voucher repository.
func NewJournalRepo(txManager *postgres.TxManager) *JournalRepo {
	return &JournalRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*journal.JournalVoucher](
			txManager,
			journalVouchersTable,
			postgres.ExtractDBColumns[journal.JournalVoucher](),
			func() *journal.JournalVoucher { return &journal.JournalVoucher{} },
		),
	}
}

// List retrieves vouchers with filtering.
func (r *JournalRepo) List(ctx context.Context, filter journal.ListFilter) (domain.ListResult[*journal.JournalVoucher], error) {
	var conds []squirrel.Sqlizer
	if filter.VoucherTypeID != nil {
		conds = append(conds, squirrel.Eq{"voucher_type_id": *filter.VoucherTypeID})
	}
	if filter.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"date": *filter.DateTo})
	}

	return r.listWhere(ctx, filter.ListFilter, conds...)
}
