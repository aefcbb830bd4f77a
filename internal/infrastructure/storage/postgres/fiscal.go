package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/fiscal"
	"bakehouse/internal/core/id"
)

const financialYearTable = "sys_financial_years"

// FinancialYearRepo persists financial years and resolves them by date.
type FinancialYearRepo struct {
	txManager *TxManager
	qb        squirrel.StatementBuilderType
}

// Ensure compile-time interface compliance.
var _ fiscal.Resolver = (*FinancialYearRepo)(nil)

// NewFinancialYearRepo creates a new financial year repository.
func NewFinancialYearRepo(txManager *TxManager) *FinancialYearRepo {
	return &FinancialYearRepo{
		txManager: txManager,
		qb:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ByDate implements fiscal.Resolver.
func (r *FinancialYearRepo) ByDate(ctx context.Context, date time.Time) (fiscal.FinancialYear, error) {
	query, args, err := r.qb.
		Select("*").
		From(financialYearTable).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		Where(squirrel.Eq{"deletion_mark": false}).
		ToSql()
	if err != nil {
		return fiscal.FinancialYear{}, fmt.Errorf("build query: %w", err)
	}

	var year fiscal.FinancialYear
	err = pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &year, query, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiscal.FinancialYear{}, apperror.NewNotFound("financial year", date.Format("2006-01-02"))
	}
	if err != nil {
		return fiscal.FinancialYear{}, fmt.Errorf("get financial year: %w", err)
	}

	return year, nil
}

// GetByYearNo retrieves the year starting in the given calendar year.
func (r *FinancialYearRepo) GetByYearNo(ctx context.Context, yearNo int) (fiscal.FinancialYear, error) {
	query, args, err := r.qb.
		Select("*").
		From(financialYearTable).
		Where(squirrel.Eq{"year_no": yearNo, "deletion_mark": false}).
		ToSql()
	if err != nil {
		return fiscal.FinancialYear{}, fmt.Errorf("build query: %w", err)
	}

	var year fiscal.FinancialYear
	err = pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &year, query, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiscal.FinancialYear{}, apperror.NewNotFound("financial year", yearNo)
	}
	if err != nil {
		return fiscal.FinancialYear{}, fmt.Errorf("get financial year: %w", err)
	}

	return year, nil
}

// Create inserts a new financial year.
func (r *FinancialYearRepo) Create(ctx context.Context, year fiscal.FinancialYear) error {
	data := StructToMap(&year)
	query, args, err := r.qb.
		Insert(financialYearTable).
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert financial year: %w", err)
	}
	return nil
}

// SetLocked locks or unlocks a year for postings.
func (r *FinancialYearRepo) SetLocked(ctx context.Context, yearID id.ID, locked bool) error {
	query, args, err := r.qb.
		Update(financialYearTable).
		Set("locked", locked).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": yearID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set locked: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("financial year", yearID.String())
	}
	return nil
}

// List returns all years, newest first.
func (r *FinancialYearRepo) List(ctx context.Context) ([]fiscal.FinancialYear, error) {
	query, args, err := r.qb.
		Select("*").
		From(financialYearTable).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("year_no DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var years []fiscal.FinancialYear
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &years, query, args...); err != nil {
		return nil, fmt.Errorf("list financial years: %w", err)
	}
	return years, nil
}
