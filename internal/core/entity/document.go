package entity

import (
	"context"
	"time"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/id"
)

// Document is the base type for business transactions.
// Examples: Purchase, KitchenIssue, Sale, StockAdjustment.
type Document struct {
	BaseDocument

	// Number is the transaction number. Assigned once at first save and
	// never changed afterwards, even when the document is edited.
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// FiscalYearID is the financial year the document belongs to,
	// resolved from Date at save time.
	FiscalYearID id.ID `db:"fiscal_year_id" json:"fiscalYearId"`

	// RevisionNo tracks detail-line versions. Each save flips the previous
	// revision's lines inactive and inserts a new active revision.
	RevisionNo int `db:"revision_no" json:"revisionNo"`

	// Remarks is an optional user comment
	Remarks string `db:"remarks" json:"remarks,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	return nil
}

// NextRevision increments the detail revision counter.
func (d *Document) NextRevision() int {
	d.RevisionNo++
	return d.RevisionNo
}

// --- Postable interface default implementations ---
// Document-specific types only need to implement DocumentType() plus the
// optional stock/ledger source interfaces.

// GetID returns the document ID.
func (d *Document) GetID() id.ID {
	return d.ID
}

// GetNumber returns the transaction number.
func (d *Document) GetNumber() string {
	return d.Number
}

// SetNumber assigns the transaction number. Called exactly once, on first save.
func (d *Document) SetNumber(number string) {
	d.Number = number
}

// GetDate returns the business date.
func (d *Document) GetDate() time.Time {
	return d.Date
}

// IsDeleted reports whether the document is soft-deleted.
func (d *Document) IsDeleted() bool {
	return d.DeletionMark
}

// SetFiscalYearID records the resolved financial year.
func (d *Document) SetFiscalYearID(yearID id.ID) {
	d.FiscalYearID = yearID
}
