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

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/registers/ledger"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const (
	ledgerPostingsTable = "reg_ledger_postings"
	ledgerEntriesTable  = "reg_ledger_entries"
)

var ledgerEntryColumns = []string{
	"line_id", "posting_id", "line_no", "account_id",
	"debit", "credit", "remarks", "active",
}

// LedgerRepo implements ledger.Repository.
// Postings are append-only: an edit deactivates the old set and writes a new
// one, so the register keeps the full posting history.
type LedgerRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewLedgerRepo creates a new accounting register repository.
func NewLedgerRepo(txManager *postgres.TxManager) *LedgerRepo {
	return &LedgerRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePosting inserts a posting header and its entries.
func (r *LedgerRepo) CreatePosting(ctx context.Context, posting *ledger.Posting) error {
	data := postgres.StructToMap(posting)
	headerQ := r.builder.Insert(ledgerPostingsTable).SetMap(data)

	sql, args, err := headerQ.ToSql()
	if err != nil {
		return fmt.Errorf("build insert posting: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert posting: %w", err)
	}

	if len(posting.Entries) == 0 {
		return nil
	}

	// Fast path: COPY when inside a transaction.
	if tx := r.txManager.GetTx(ctx); tx != nil {
		inserter := postgres.NewBatchInserter(r.txManager)
		rows := make([][]any, 0, len(posting.Entries))
		for _, e := range posting.Entries {
			rows = append(rows, []any{
				e.LineID, posting.ID, e.LineNo, e.AccountID,
				e.Debit, e.Credit, e.Remarks, e.Active,
			})
		}
		if _, err := inserter.CopyFromSlice(ctx, ledgerEntriesTable, ledgerEntryColumns, rows); err != nil {
			return fmt.Errorf("copy entries: %w", err)
		}
		return nil
	}

	entriesQ := r.builder.Insert(ledgerEntriesTable).Columns(ledgerEntryColumns...)
	for _, e := range posting.Entries {
		entriesQ = entriesQ.Values(
			e.LineID, posting.ID, e.LineNo, e.AccountID,
			e.Debit, e.Credit, e.Remarks, e.Active,
		)
	}

	sql, args, err = entriesQ.ToSql()
	if err != nil {
		return fmt.Errorf("build insert entries: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert entries: %w", err)
	}

	return nil
}

// GetPostingByID retrieves a posting with its entries.
func (r *LedgerRepo) GetPostingByID(ctx context.Context, postingID id.ID) (*ledger.Posting, error) {
	q := r.builder.Select("*").
		From(ledgerPostingsTable).
		Where(squirrel.Eq{"id": postingID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var posting ledger.Posting
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &posting, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("posting", postingID.String())
		}
		return nil, fmt.Errorf("get posting: %w", err)
	}

	entries, err := r.getEntries(ctx, posting.ID)
	if err != nil {
		return nil, err
	}
	posting.Entries = entries

	return &posting, nil
}

// FindActiveByReference retrieves the active posting for a source document.
// Returns nil when the document has no active posting.
func (r *LedgerRepo) FindActiveByReference(ctx context.Context, refID id.ID) (*ledger.Posting, error) {
	q := r.builder.Select("*").
		From(ledgerPostingsTable).
		Where(squirrel.Eq{"reference_id": refID, "deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var posting ledger.Posting
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &posting, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find posting by reference: %w", err)
	}

	entries, err := r.getEntries(ctx, posting.ID)
	if err != nil {
		return nil, err
	}
	posting.Entries = entries

	return &posting, nil
}

// DeactivateByReference soft deletes the active posting set for a document.
// Returns the deactivated posting, or nil when none existed.
func (r *LedgerRepo) DeactivateByReference(ctx context.Context, refID id.ID) (*ledger.Posting, error) {
	previous, err := r.FindActiveByReference(ctx, refID)
	if err != nil {
		return nil, err
	}
	if previous == nil {
		return nil, nil
	}

	querier := r.txManager.GetQuerier(ctx)

	headerSQL := `
		UPDATE reg_ledger_postings
		SET deletion_mark = true, version = version + 1, updated_at = NOW()
		WHERE id = $1
	`
	if _, err := querier.Exec(ctx, headerSQL, previous.ID); err != nil {
		return nil, fmt.Errorf("deactivate posting: %w", err)
	}

	entriesSQL := "UPDATE reg_ledger_entries SET active = false WHERE posting_id = $1"
	if _, err := querier.Exec(ctx, entriesSQL, previous.ID); err != nil {
		return nil, fmt.Errorf("deactivate entries: %w", err)
	}

	return previous, nil
}

// AccountEntries lists active entries for an account over a period.
func (r *LedgerRepo) AccountEntries(ctx context.Context, accountID id.ID, filter ledger.EntryFilter) ([]ledger.AccountEntry, error) {
	q := r.builder.Select(
		"e.line_id", "e.posting_id", "e.line_no", "e.account_id",
		"e.debit", "e.credit", "e.remarks", "e.active",
		"p.date", "p.reference_type", "p.reference_no",
	).
		From(ledgerEntriesTable + " e").
		Join(ledgerPostingsTable + " p ON p.id = e.posting_id").
		Where(squirrel.Eq{"e.account_id": accountID, "e.active": true, "p.deletion_mark": false})

	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"p.date": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"p.date": *filter.To})
	}

	q = q.OrderBy("p.date", "p.reference_no", "e.line_no")

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

	var entries []ledger.AccountEntry
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("select account entries: %w", err)
	}

	return entries, nil
}

// AccountBalance computes net debit minus credit for an account as of a date.
func (r *LedgerRepo) AccountBalance(ctx context.Context, accountID id.ID, asOf time.Time) (types.Money, error) {
	sql := `
		SELECT COALESCE(SUM(e.debit - e.credit), 0)
		FROM reg_ledger_entries e
		JOIN reg_ledger_postings p ON p.id = e.posting_id
		WHERE e.account_id = $1
		  AND e.active
		  AND p.deletion_mark = false
		  AND p.date <= $2
	`

	var balance decimal.Decimal
	err := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, accountID, asOf).Scan(&balance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return types.Zero(), fmt.Errorf("account balance: %w", err)
	}

	return balance, nil
}

// TrialBalance computes per-account debit/credit totals over a period.
func (r *LedgerRepo) TrialBalance(ctx context.Context, from, to time.Time) ([]ledger.TrialBalanceRow, error) {
	sql := `
		SELECT
			e.account_id,
			COALESCE(SUM(e.debit), 0) AS total_debit,
			COALESCE(SUM(e.credit), 0) AS total_credit
		FROM reg_ledger_entries e
		JOIN reg_ledger_postings p ON p.id = e.posting_id
		WHERE e.active
		  AND p.deletion_mark = false
		  AND p.date >= $1 AND p.date <= $2
		GROUP BY e.account_id
		ORDER BY e.account_id
	`

	var rows []ledger.TrialBalanceRow
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, sql, from, to); err != nil {
		return nil, fmt.Errorf("trial balance: %w", err)
	}

	return rows, nil
}

func (r *LedgerRepo) getEntries(ctx context.Context, postingID id.ID) ([]ledger.Entry, error) {
	q := r.builder.Select(ledgerEntryColumns...).
		From(ledgerEntriesTable).
		Where(squirrel.Eq{"posting_id": postingID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entries []ledger.Entry
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("select entries: %w", err)
	}

	return entries, nil
}

// Ensure interface compliance.
var _ ledger.Repository = (*LedgerRepo)(nil)
