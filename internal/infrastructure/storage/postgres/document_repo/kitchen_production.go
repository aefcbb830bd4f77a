package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
	"bakehouse/internal/domain/documents/kitchenproduction"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const (
	kitchenProductionsTable     = "doc_kitchen_productions"
	kitchenProductionLinesTable = "doc_kitchen_production_lines"
)

// KitchenProductionRepo implements kitchenproduction.Repository.
type KitchenProductionRepo struct {
	*BaseDocumentRepo[*kitchenproduction.KitchenProduction]
}

// NewKitchenProductionRepo creates a new production receipt repository.
func NewKitchenProductionRepo(txManager *postgres.TxManager) *KitchenProductionRepo {
	return &KitchenProductionRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*kitchenproduction.KitchenProduction](
			txManager,
			kitchenProductionsTable,
			postgres.ExtractDBColumns[kitchenproduction.KitchenProduction](),
			func() *kitchenproduction.KitchenProduction { return &kitchenproduction.KitchenProduction{} },
		),
	}
}

// GetLines retrieves the active line revision for a production receipt.
func (r *KitchenProductionRepo) GetLines(ctx context.Context, docID id.ID) ([]kitchenproduction.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "quantity", "cost_rate").
		From(kitchenProductionLinesTable).
		Where(squirrel.Eq{"document_id": docID, "active": true}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []kitchenproduction.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines writes a new line revision and retires the previous one.
func (r *KitchenProductionRepo) SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []kitchenproduction.Line) error {
	if err := r.deactivateLines(ctx, kitchenProductionLinesTable, docID); err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(kitchenProductionLinesTable).
		Columns("line_id", "document_id", "revision_no", "line_no", "item_id", "quantity", "cost_rate", "active")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, revisionNo, line.LineNo, line.ItemID, line.Quantity, line.CostRate, true)
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

// List retrieves production receipts with filtering.
func (r *KitchenProductionRepo) List(ctx context.Context, filter kitchenproduction.ListFilter) (domain.ListResult[*kitchenproduction.KitchenProduction], error) {
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
