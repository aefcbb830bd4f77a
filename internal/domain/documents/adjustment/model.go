// Package adjustment provides the StockAdjustment document.
// An adjustment states target quantities from a physical count; the delta
// against the register's closing balance becomes the movement. Because the
// engine removes the document's own previous movements before deltas are
// computed, re-posting the same count is idempotent.
package adjustment

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/posting"
	"bakehouse/internal/domain/registers/stock"
)

// StockAdjustment represents a physical count correction document.
type StockAdjustment struct {
	entity.Document

	// LocationID is the counted location
	LocationID id.ID `db:"location_id" json:"locationId"`

	// Table part: counted items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one counted item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID id.ID `db:"item_id" json:"itemId"`

	// TargetQuantity is the counted physical quantity
	TargetQuantity types.Quantity `db:"target_quantity" json:"targetQuantity"`

	// Delta is the signed correction computed at posting time:
	// target minus the closing balance without this document.
	Delta types.Quantity `db:"delta" json:"delta"`
}

// NewStockAdjustment creates a new adjustment document.
func NewStockAdjustment(locationID id.ID) *StockAdjustment {
	return &StockAdjustment{
		Document:   entity.NewDocument(),
		LocationID: locationID,
		Lines:      make([]Line, 0),
	}
}

// AddLine adds a counted item line.
func (a *StockAdjustment) AddLine(itemID id.ID, target types.Quantity) {
	a.Lines = append(a.Lines, Line{
		LineID:         id.New(),
		LineNo:         len(a.Lines) + 1,
		ItemID:         itemID,
		TargetQuantity: target,
	})
}

// Validate implements entity.Validatable.
func (a *StockAdjustment) Validate(ctx context.Context) error {
	if err := a.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(a.LocationID) {
		return apperror.NewValidation("location is required").
			WithDetail("field", "locationId")
	}
	if len(a.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	seen := make(map[id.ID]bool, len(a.Lines))
	for i, line := range a.Lines {
		if id.IsNil(line.ItemID) {
			return apperror.NewValidation("item is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.TargetQuantity.IsNegative() {
			return apperror.NewValidation("target quantity cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if seen[line.ItemID] {
			return apperror.NewValidation("item counted twice").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		seen[line.ItemID] = true
	}

	return nil
}

// DocumentType implements posting.Postable.
func (a *StockAdjustment) DocumentType() string {
	return DocumentType
}

// PrepareStock implements posting.StockPreparer.
// Runs inside the posting transaction after this document's previous
// movements were removed, so the closing balance excludes them.
func (a *StockAdjustment) PrepareStock(ctx context.Context, register *stock.Service) error {
	for i := range a.Lines {
		closing, err := register.ClosingQuantity(ctx, a.Lines[i].ItemID, a.LocationID, a.Date)
		if err != nil {
			return err
		}
		a.Lines[i].Delta = stock.AdjustmentDelta(a.Lines[i].TargetQuantity, closing)
	}
	return nil
}

// StockMovements implements posting.StockSource.
// Zero deltas write no movement.
func (a *StockAdjustment) StockMovements(ctx context.Context) ([]entity.StockMovement, error) {
	movements := make([]entity.StockMovement, 0, len(a.Lines))
	for _, line := range a.Lines {
		if line.Delta.IsZero() {
			continue
		}
		movements = append(movements, entity.NewStockMovement(
			line.ItemID,
			a.LocationID,
			entity.MovementAdjustment,
			line.Delta,
			nil,
			a.Number,
			a.Date,
		))
	}
	return movements, nil
}

// Ensure interface compliance at compile time.
var (
	_ posting.Postable      = (*StockAdjustment)(nil)
	_ posting.StockPreparer = (*StockAdjustment)(nil)
	_ posting.StockSource   = (*StockAdjustment)(nil)
)
