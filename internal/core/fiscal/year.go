// Package fiscal provides financial year entities and April-March period math.
// A financial year runs April 1 through March 31; documents dated January
// through March belong to the year that started the previous calendar year.
package fiscal

import (
	"context"
	"time"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
)

// FinancialYear is a lockable accounting period.
type FinancialYear struct {
	entity.BaseEntity

	// YearNo is the calendar year the period starts in (2024 for FY 2024-25)
	YearNo int `db:"year_no" json:"yearNo"`

	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`

	// Locked closes the year to new or edited postings
	Locked bool `db:"locked" json:"locked"`

	// Active distinguishes the working year from archived ones
	Active bool `db:"active" json:"active"`
}

// NewFinancialYear creates the April-March period starting in yearNo.
func NewFinancialYear(yearNo int) FinancialYear {
	start, end := Bounds(yearNo)
	return FinancialYear{
		BaseEntity: entity.NewBaseEntity(),
		YearNo:     yearNo,
		StartDate:  start,
		EndDate:    end,
		Active:     true,
	}
}

// Contains reports whether date falls inside the period.
func (fy *FinancialYear) Contains(date time.Time) bool {
	return !date.Before(fy.StartDate) && date.Before(fy.EndDate.AddDate(0, 0, 1))
}

// CheckOpen returns an error if the year cannot accept postings.
func (fy *FinancialYear) CheckOpen() error {
	if !fy.Active || fy.DeletionMark {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"Financial year is not active",
		).WithDetail("year_no", fy.YearNo)
	}
	if fy.Locked {
		return apperror.NewFiscalYearLocked(fy.YearNo)
	}
	return nil
}

// StartYear returns the calendar year the fiscal year containing date started in.
// January through March belong to the previous calendar year's period.
func StartYear(date time.Time) int {
	if date.Month() <= time.March {
		return date.Year() - 1
	}
	return date.Year()
}

// Suffix returns the two-digit year suffix used in transaction numbers.
func Suffix(date time.Time) int {
	return StartYear(date) % 100
}

// Bounds returns the first and last day of the period starting in yearNo.
func Bounds(yearNo int) (start, end time.Time) {
	start = time.Date(yearNo, time.April, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(yearNo+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Resolver resolves the financial year for a posting date.
// The PostgreSQL implementation lives in infrastructure/storage/postgres.
type Resolver interface {
	// ByDate returns the financial year containing date.
	// Returns a not-found error when no year row exists for the period.
	ByDate(ctx context.Context, date time.Time) (FinancialYear, error)
}
