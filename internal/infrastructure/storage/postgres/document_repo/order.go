package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
	"bakehouse/internal/domain/documents/order"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const (
	ordersTable     = "doc_orders"
	orderLinesTable = "doc_order_lines"
)

// OrderRepo implements order.Repository.
type OrderRepo struct {
	*BaseDocumentRepo[*order.Order]
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txManager *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*order.Order](
			txManager,
			ordersTable,
			postgres.ExtractDBColumns[order.Order](),
			func() *order.Order { return &order.Order{} },
		),
	}
}

// GetLines retrieves the active line revision for an order.
func (r *OrderRepo) GetLines(ctx context.Context, docID id.ID) ([]order.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "quantity", "rate", "amount").
		From(orderLinesTable).
		Where(squirrel.Eq{"document_id": docID, "active": true}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []order.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines writes a new line revision and retires the previous one.
func (r *OrderRepo) SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []order.Line) error {
	if err := r.deactivateLines(ctx, orderLinesTable, docID); err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(orderLinesTable).
		Columns("line_id", "document_id", "revision_no", "line_no", "item_id", "quantity", "rate", "amount", "active")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, revisionNo, line.LineNo, line.ItemID, line.Quantity, line.Rate, line.Amount, true)
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

// List retrieves orders with filtering.
func (r *OrderRepo) List(ctx context.Context, filter order.ListFilter) (domain.ListResult[*order.Order], error) {
	var conds []squirrel.Sqlizer
	if filter.LocationID != nil {
		conds = append(conds, squirrel.Eq{"location_id": *filter.LocationID})
	}
	if filter.CustomerAccountID != nil {
		conds = append(conds, squirrel.Eq{"customer_account_id": *filter.CustomerAccountID})
	}
	if filter.Status != nil {
		conds = append(conds, squirrel.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"date": *filter.DateTo})
	}

	return r.listWhere(ctx, filter.ListFilter, conds...)
}
