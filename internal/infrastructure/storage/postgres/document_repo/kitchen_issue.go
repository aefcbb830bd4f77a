package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
	"bakehouse/internal/domain/documents/kitchenissue"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const (
	kitchenIssuesTable     = "doc_kitchen_issues"
	kitchenIssueLinesTable = "doc_kitchen_issue_lines"
)

// KitchenIssueRepo implements kitchenissue.Repository.
type KitchenIssueRepo struct {
	*BaseDocumentRepo[*kitchenissue.KitchenIssue]
}

// NewKitchenIssueRepo creates a new kitchen issue repository.
func NewKitchenIssueRepo(txManager *postgres.TxManager) *KitchenIssueRepo {
	return &KitchenIssueRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*kitchenissue.KitchenIssue](
			txManager,
			kitchenIssuesTable,
			postgres.ExtractDBColumns[kitchenissue.KitchenIssue](),
			func() *kitchenissue.KitchenIssue { return &kitchenissue.KitchenIssue{} },
		),
	}
}

// GetLines retrieves the active line revision for a kitchen issue.
func (r *KitchenIssueRepo) GetLines(ctx context.Context, docID id.ID) ([]kitchenissue.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "quantity").
		From(kitchenIssueLinesTable).
		Where(squirrel.Eq{"document_id": docID, "active": true}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []kitchenissue.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines writes a new line revision and retires the previous one.
func (r *KitchenIssueRepo) SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []kitchenissue.Line) error {
	if err := r.deactivateLines(ctx, kitchenIssueLinesTable, docID); err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(kitchenIssueLinesTable).
		Columns("line_id", "document_id", "revision_no", "line_no", "item_id", "quantity", "active")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, revisionNo, line.LineNo, line.ItemID, line.Quantity, true)
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

// List retrieves kitchen issues with filtering.
func (r *KitchenIssueRepo) List(ctx context.Context, filter kitchenissue.ListFilter) (domain.ListResult[*kitchenissue.KitchenIssue], error) {
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
