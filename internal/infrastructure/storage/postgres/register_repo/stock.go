// Package register_repo provides PostgreSQL implementations for register repositories.
package register_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/registers/stock"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const stockMovementsTable = "reg_stock_movements"

var stockMovementColumns = []string{
	"line_id", "item_id", "location_id",
	"transaction_no", "transaction_date",
	"movement_type", "quantity", "net_rate", "created_at",
}

// StockRepo implements stock.Repository.
type StockRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewStockRepo creates a new stock register repository.
func NewStockRepo(txManager *postgres.TxManager) *StockRepo {
	return &StockRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateMovements batch inserts movements.
func (r *StockRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	// Fast path: COPY when inside a transaction.
	if tx := r.txManager.GetTx(ctx); tx != nil {
		inserter := postgres.NewBatchInserter(r.txManager)
		rows := make([][]any, 0, len(movements))
		for _, m := range movements {
			rows = append(rows, []any{
				m.LineID, m.ItemID, m.LocationID,
				m.TransactionNo, m.TransactionDate,
				m.MovementType, m.Quantity, m.NetRate, m.CreatedAt,
			})
		}
		if _, err := inserter.CopyFromSlice(ctx, stockMovementsTable, stockMovementColumns, rows); err != nil {
			return fmt.Errorf("copy movements: %w", err)
		}
		return nil
	}

	// Fallback: non-transactional insert. Prefer calling CreateMovements within tx.
	q := r.builder.Insert(stockMovementsTable).Columns(stockMovementColumns...)
	for _, m := range movements {
		q = q.Values(
			m.LineID, m.ItemID, m.LocationID,
			m.TransactionNo, m.TransactionDate,
			m.MovementType, m.Quantity, m.NetRate, m.CreatedAt,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert movements: %w", err)
	}

	return nil
}

// DeleteByTransactionNo removes the whole movement set for a transaction.
func (r *StockRepo) DeleteByTransactionNo(ctx context.Context, transactionNo string) error {
	q := r.builder.Delete(stockMovementsTable).
		Where(squirrel.Eq{"transaction_no": transactionNo})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}

	return nil
}

// GetByTransactionNo retrieves movements for a transaction number.
func (r *StockRepo) GetByTransactionNo(ctx context.Context, transactionNo string) ([]entity.StockMovement, error) {
	q := r.builder.Select(stockMovementColumns...).
		From(stockMovementsTable).
		Where(squirrel.Eq{"transaction_no": transactionNo}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.StockMovement
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	return movements, nil
}

// Summarize computes period totals for one item at one location.
// Quantities are signed, so the opening and closing are plain sums. The
// average rate weighs rated inbound movements only, up to the period end.
func (r *StockRepo) Summarize(ctx context.Context, filter stock.SummaryFilter) (stock.Summary, error) {
	summary := stock.Summary{
		ItemID:          filter.ItemID,
		LocationID:      filter.LocationID,
		WeightedAvgRate: types.Zero(),
	}

	sql := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE transaction_date < $3), 0) AS opening,
			COALESCE(SUM(quantity) FILTER (WHERE quantity > 0 AND transaction_date >= $3 AND transaction_date <= $4), 0) AS inbound,
			COALESCE(SUM(-quantity) FILTER (WHERE quantity < 0 AND transaction_date >= $3 AND transaction_date <= $4), 0) AS outbound,
			COALESCE(SUM(quantity) FILTER (WHERE transaction_date <= $4), 0) AS closing,
			SUM(quantity * net_rate) FILTER (WHERE quantity > 0 AND net_rate IS NOT NULL AND transaction_date <= $4) AS rated_value,
			SUM(quantity) FILTER (WHERE quantity > 0 AND net_rate IS NOT NULL AND transaction_date <= $4) AS rated_quantity
		FROM reg_stock_movements
		WHERE item_id = $1 AND location_id = $2
	`

	var opening, inbound, outbound, closing int64
	var ratedValue *decimal.Decimal
	var ratedQuantity *int64

	err := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql,
		filter.ItemID, filter.LocationID, filter.From, filter.To,
	).Scan(&opening, &inbound, &outbound, &closing, &ratedValue, &ratedQuantity)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return summary, fmt.Errorf("summarize stock: %w", err)
	}

	summary.Opening = types.NewQuantityFromInt64Scaled(opening)
	summary.Inbound = types.NewQuantityFromInt64Scaled(inbound)
	summary.Outbound = types.NewQuantityFromInt64Scaled(outbound)
	summary.Closing = types.NewQuantityFromInt64Scaled(closing)

	if ratedValue != nil && ratedQuantity != nil && *ratedQuantity != 0 {
		// quantity columns are scaled integers; the scale cancels out in the
		// value/quantity division
		summary.WeightedAvgRate = ratedValue.Div(decimal.NewFromInt(*ratedQuantity)).Round(4)
	}

	return summary, nil
}

// SummarizeByLocation computes summaries for every item with movements at a
// location over a period.
func (r *StockRepo) SummarizeByLocation(ctx context.Context, locationID id.ID, from, to time.Time) ([]stock.Summary, error) {
	sql := `
		SELECT
			item_id,
			COALESCE(SUM(quantity) FILTER (WHERE transaction_date < $2), 0) AS opening,
			COALESCE(SUM(quantity) FILTER (WHERE quantity > 0 AND transaction_date >= $2 AND transaction_date <= $3), 0) AS inbound,
			COALESCE(SUM(-quantity) FILTER (WHERE quantity < 0 AND transaction_date >= $2 AND transaction_date <= $3), 0) AS outbound,
			COALESCE(SUM(quantity) FILTER (WHERE transaction_date <= $3), 0) AS closing,
			SUM(quantity * net_rate) FILTER (WHERE quantity > 0 AND net_rate IS NOT NULL AND transaction_date <= $3) AS rated_value,
			SUM(quantity) FILTER (WHERE quantity > 0 AND net_rate IS NOT NULL AND transaction_date <= $3) AS rated_quantity
		FROM reg_stock_movements
		WHERE location_id = $1
		GROUP BY item_id
		ORDER BY item_id
	`

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, locationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("summarize location: %w", err)
	}
	defer rows.Close()

	var summaries []stock.Summary
	for rows.Next() {
		s := stock.Summary{LocationID: locationID, WeightedAvgRate: types.Zero()}

		var opening, inbound, outbound, closing int64
		var ratedValue *decimal.Decimal
		var ratedQuantity *int64

		if err := rows.Scan(&s.ItemID, &opening, &inbound, &outbound, &closing, &ratedValue, &ratedQuantity); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}

		s.Opening = types.NewQuantityFromInt64Scaled(opening)
		s.Inbound = types.NewQuantityFromInt64Scaled(inbound)
		s.Outbound = types.NewQuantityFromInt64Scaled(outbound)
		s.Closing = types.NewQuantityFromInt64Scaled(closing)
		if ratedValue != nil && ratedQuantity != nil && *ratedQuantity != 0 {
			s.WeightedAvgRate = ratedValue.Div(decimal.NewFromInt(*ratedQuantity)).Round(4)
		}

		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// MovementHistory returns movement rows for an item, newest first.
func (r *StockRepo) MovementHistory(ctx context.Context, itemID id.ID, filter stock.MovementFilter) ([]entity.StockMovement, error) {
	q := r.builder.Select(stockMovementColumns...).
		From(stockMovementsTable).
		Where(squirrel.Eq{"item_id": itemID})

	if filter.LocationID != nil {
		q = q.Where(squirrel.Eq{"location_id": *filter.LocationID})
	}
	if filter.MovementType != nil {
		q = q.Where(squirrel.Eq{"movement_type": *filter.MovementType})
	}
	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"transaction_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"transaction_date": *filter.ToDate})
	}

	q = q.OrderBy("transaction_date DESC", "created_at DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.StockMovement
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}

	return movements, nil
}

// Ensure interface compliance.
var _ stock.Repository = (*StockRepo)(nil)
