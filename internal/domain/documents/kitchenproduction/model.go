// Package kitchenproduction provides the KitchenProduction document.
// Records finished products coming out of the kitchen into a location's
// stock. Receipts are rated at cost so they feed the weighted-average
// valuation alongside purchases.
package kitchenproduction

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/posting"
)

// KitchenProduction represents a finished product receipt document.
type KitchenProduction struct {
	entity.Document

	// LocationID is the location receiving the production output
	LocationID id.ID `db:"location_id" json:"locationId"`

	// Table part: produced items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one produced item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID   id.ID          `db:"item_id" json:"itemId"`
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// CostRate is the unit cost of production
	CostRate types.Money `db:"cost_rate" json:"costRate"`
}

// NewKitchenProduction creates a new production receipt document.
func NewKitchenProduction(locationID id.ID) *KitchenProduction {
	return &KitchenProduction{
		Document:   entity.NewDocument(),
		LocationID: locationID,
		Lines:      make([]Line, 0),
	}
}

// AddLine adds a produced item line.
func (k *KitchenProduction) AddLine(itemID id.ID, quantity types.Quantity, costRate types.Money) {
	k.Lines = append(k.Lines, Line{
		LineID:   id.New(),
		LineNo:   len(k.Lines) + 1,
		ItemID:   itemID,
		Quantity: quantity,
		CostRate: costRate,
	})
}

// Validate implements entity.Validatable.
func (k *KitchenProduction) Validate(ctx context.Context) error {
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
		if line.CostRate.IsNegative() {
			return apperror.NewValidation("cost rate cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// DocumentType implements posting.Postable.
func (k *KitchenProduction) DocumentType() string {
	return DocumentType
}

// StockMovements implements posting.StockSource.
// Each line becomes an inbound movement rated at cost.
func (k *KitchenProduction) StockMovements(ctx context.Context) ([]entity.StockMovement, error) {
	movements := make([]entity.StockMovement, 0, len(k.Lines))
	for _, line := range k.Lines {
		rate := line.CostRate
		movements = append(movements, entity.NewStockMovement(
			line.ItemID,
			k.LocationID,
			entity.MovementKitchenProduction,
			line.Quantity,
			&rate,
			k.Number,
			k.Date,
		))
	}
	return movements, nil
}

// Ensure interface compliance at compile time.
var (
	_ posting.Postable    = (*KitchenProduction)(nil)
	_ posting.StockSource = (*KitchenProduction)(nil)
)
