package dto

import (
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/documents/adjustment"
)

// CreateAdjustmentRequest represents a request to create a stock adjustment.
type CreateAdjustmentRequest struct {
	Date       time.Time               `json:"date" binding:"required"`
	LocationID string                  `json:"locationId" binding:"required"`
	Remarks    string                  `json:"remarks,omitempty"`
	Lines      []AdjustmentLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// AdjustmentLineRequest carries the counted physical quantity for one item.
type AdjustmentLineRequest struct {
	ItemID         string         `json:"itemId" binding:"required"`
	TargetQuantity types.Quantity `json:"targetQuantity"`
}

// ToEntity converts request to domain entity. Deltas are not accepted from
// the client; they are computed against the stock balance at posting time.
func (r *CreateAdjustmentRequest) ToEntity() *adjustment.StockAdjustment {
	locationID, _ := id.Parse(r.LocationID)

	doc := adjustment.NewStockAdjustment(locationID)
	doc.Date = r.Date
	doc.Remarks = r.Remarks

	for _, line := range r.Lines {
		itemID, _ := id.Parse(line.ItemID)
		doc.AddLine(itemID, line.TargetQuantity)
	}

	return doc
}

// UpdateAdjustmentRequest represents a request to update a stock adjustment.
type UpdateAdjustmentRequest struct {
	Date    *time.Time              `json:"date,omitempty"`
	Remarks *string                 `json:"remarks,omitempty"`
	Lines   []AdjustmentLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateAdjustmentRequest) ApplyTo(doc *adjustment.StockAdjustment) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.Remarks != nil {
		doc.Remarks = *r.Remarks
	}

	if r.Lines != nil {
		doc.Lines = doc.Lines[:0]
		for _, line := range r.Lines {
			itemID, _ := id.Parse(line.ItemID)
			doc.AddLine(itemID, line.TargetQuantity)
		}
	}
}
