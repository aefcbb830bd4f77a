// Package kitchenissue provides the KitchenIssue document.
// Records raw materials drawn from a location's stock into the kitchen.
// Issues are pure quantity movements: outbound, unrated, no accounting entry.
package kitchenissue

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/posting"
)

// KitchenIssue represents a raw material issue document.
type KitchenIssue struct {
	entity.Document

	// LocationID is the kitchen drawing the materials
	LocationID id.ID `db:"location_id" json:"locationId"`

	// Table part: issued items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one issued item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID   id.ID          `db:"item_id" json:"itemId"`
	Quantity types.Quantity `db:"quantity" json:"quantity"`
}

// NewKitchenIssue creates a new kitchen issue document.
func NewKitchenIssue(locationID id.ID) *KitchenIssue {
	return &KitchenIssue{
		Document:   entity.NewDocument(),
		LocationID: locationID,
		Lines:      make([]Line, 0),
	}
}

// AddLine adds an item line.
func (k *KitchenIssue) AddLine(itemID id.ID, quantity types.Quantity) {
	k.Lines = append(k.Lines, Line{
		LineID:   id.New(),
		LineNo:   len(k.Lines) + 1,
		ItemID:   itemID,
		Quantity: quantity,
	})
}

// Validate implements entity.Validatable.
func (k *KitchenIssue) Validate(ctx context.Context) error {
	if err := k.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(k.LocationID) {
		return apperror.NewValidation("location is required").
			WithDetail("field", "locationId")
	}
	if len(k.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range k.Lines {
		if id.IsNil(line.ItemID) {
			return apperror.NewValidation("item is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// DocumentType implements posting.Postable.
func (k *KitchenIssue) DocumentType() string {
	return DocumentType
}

// StockMovements implements posting.StockSource.
// Each line becomes an outbound unrated movement.
func (k *KitchenIssue) StockMovements(ctx context.Context) ([]entity.StockMovement, error) {
	movements := make([]entity.StockMovement, 0, len(k.Lines))
	for _, line := range k.Lines {
		movements = append(movements, entity.NewStockMovement(
			line.ItemID,
			k.LocationID,
			entity.MovementKitchenIssue,
			line.Quantity.Neg(),
			nil,
			k.Number,
			k.Date,
		))
	}
	return movements, nil
}

// Ensure interface compliance at compile time.
var (
	_ posting.Postable    = (*KitchenIssue)(nil)
	_ posting.StockSource = (*KitchenIssue)(nil)
)
