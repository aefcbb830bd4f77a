package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
	"bakehouse/internal/domain/documents/purchase"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const (
	purchasesTable     = "doc_purchases"
	purchaseLinesTable = "doc_purchase_lines"
)

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Purchase]
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txManager *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*purchase.Purchase](
			txManager,
			purchasesTable,
			postgres.ExtractDBColumns[purchase.Purchase](),
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}

// GetLines retrieves the active line revision for a purchase.
func (r *PurchaseRepo) GetLines(ctx context.Context, docID id.ID) ([]purchase.Line, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "item_id",
			"quantity", "rate", "tax_percent", "amount", "tax_amount", "total",
		).
		From(purchaseLinesTable).
		Where(squirrel.Eq{"document_id": docID, "active": true}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []purchase.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines writes a new line revision and retires the previous one.
func (r *PurchaseRepo) SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []purchase.Line) error {
	if err := r.deactivateLines(ctx, purchaseLinesTable, docID); err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(purchaseLinesTable).
		Columns(
			"line_id", "document_id", "revision_no", "line_no", "item_id",
			"quantity", "rate", "tax_percent", "amount", "tax_amount", "total",
			"active",
		)

	for _, line := range lines {
		q = q.Values(
			line.LineID, docID, revisionNo, line.LineNo, line.ItemID,
			line.Quantity, line.Rate, line.TaxPercent, line.Amount, line.TaxAmount, line.Total,
			true,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// List retrieves purchases with filtering.
func (r *PurchaseRepo) List(ctx context.Context, filter purchase.ListFilter) (domain.ListResult[*purchase.Purchase], error) {
	var conds []squirrel.Sqlizer
	if filter.LocationID != nil {
		conds = append(conds, squirrel.Eq{"location_id": *filter.LocationID})
	}
	if filter.SupplierAccountID != nil {
		conds = append(conds, squirrel.Eq{"supplier_account_id": *filter.SupplierAccountID})
	}
	if filter.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"date": *filter.DateTo})
	}

	return r.listWhere(ctx, filter.ListFilter, conds...)
}
