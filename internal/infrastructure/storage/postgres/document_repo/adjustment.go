package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
	"bakehouse/internal/domain/documents/adjustment"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const (
	adjustmentsTable     = "doc_stock_adjustments"
	adjustmentLinesTable = "doc_stock_adjustment_lines"
)

// AdjustmentRepo implements adjustment.Repository.
type AdjustmentRepo struct {
	*BaseDocumentRepo[*adjustment.StockAdjustment]
}

// NewAdjustmentRepo creates a new stock adjustment repository.
func NewAdjustmentRepo(txManager *postgres.TxManager) *AdjustmentRepo {
	return &AdjustmentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*adjustment.StockAdjustment](
			txManager,
			adjustmentsTable,
			postgres.ExtractDBColumns[adjustment.StockAdjustment](),
			func() *adjustment.StockAdjustment { return &adjustment.StockAdjustment{} },
		),
	}
}

// GetLines retrieves the active line revision for an adjustment.
func (r *AdjustmentRepo) GetLines(ctx context.Context, docID id.ID) ([]adjustment.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "target_quantity", "delta").
		From(adjustmentLinesTable).
		Where(squirrel.Eq{"document_id": docID, "active": true}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []adjustment.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines writes a new line revision and retires the previous one.
// Deltas are stored as computed at posting time.
func (r *AdjustmentRepo) SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []adjustment.Line) error {
	if err := r.deactivateLines(ctx, adjustmentLinesTable, docID); err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(adjustmentLinesTable).
		Columns("line_id", "document_id", "revision_no", "line_no", "item_id", "target_quantity", "delta", "active")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, revisionNo, line.LineNo, line.ItemID, line.TargetQuantity, line.Delta, true)
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

// List retrieves adjustments with filtering.
func (r *AdjustmentRepo) List(ctx context.Context, filter adjustment.ListFilter) (domain.ListResult[*adjustment.StockAdjustment], error) {
	var conds []squirrel.Sqlizer
	if filter.LocationID != nil {
		conds = append(conds, squirrel.Eq{"location_id": *filter.LocationID})
	}
	if filter.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"date": *filter.DateTo})
	}

	return r.listWhere(ctx, filter.ListFilter, conds...)
}
