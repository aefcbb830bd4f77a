package dto

import (
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/documents/kitchenissue"
	"bakehouse/internal/domain/documents/kitchenproduction"
)

// --- Kitchen issue ---

// CreateKitchenIssueRequest represents a request to create a kitchen issue.
type CreateKitchenIssueRequest struct {
	Date       time.Time                 `json:"date" binding:"required"`
	LocationID string                    `json:"locationId" binding:"required"`
	Remarks    string                    `json:"remarks,omitempty"`
	Lines      []KitchenIssueLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// KitchenIssueLineRequest represents a line in create/update request.
type KitchenIssueLineRequest struct {
	ItemID   string         `json:"itemId" binding:"required"`
	Quantity types.Quantity `json:"quantity" binding:"required"`
}

// ToEntity converts request to domain entity.
func (r *CreateKitchenIssueRequest) ToEntity() *kitchenissue.KitchenIssue {
	locationID, _ := id.Parse(r.LocationID)

	doc := kitchenissue.NewKitchenIssue(locationID)
	doc.Date = r.Date
	doc.Remarks = r.Remarks

	for _, line := range r.Lines {
		itemID, _ := id.Parse(line.ItemID)
		doc.AddLine(itemID, line.Quantity)
	}

	return doc
}

// UpdateKitchenIssueRequest represents a request to update a kitchen issue.
type UpdateKitchenIssueRequest struct {
	Date    *time.Time                `json:"date,omitempty"`
	Remarks *string                   `json:"remarks,omitempty"`
	Lines   []KitchenIssueLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateKitchenIssueRequest) ApplyTo(doc *kitchenissue.KitchenIssue) {
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
			doc.AddLine(itemID, line.Quantity)
		}
	}
}

// --- Kitchen production ---

// CreateKitchenProductionRequest represents a request to create a
// production receipt.
type CreateKitchenProductionRequest struct {
	Date       time.Time                      `json:"date" binding:"required"`
	LocationID string                         `json:"locationId" binding:"required"`
	Remarks    string                         `json:"remarks,omitempty"`
	Lines      []KitchenProductionLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// KitchenProductionLineRequest represents a line in create/update request.
type KitchenProductionLineRequest struct {
	ItemID   string         `json:"itemId" binding:"required"`
	Quantity types.Quantity `json:"quantity" binding:"required"`
	CostRate types.Money    `json:"costRate"`
}

// ToEntity converts request to domain entity.
func (r *CreateKitchenProductionRequest) ToEntity() *kitchenproduction.KitchenProduction {
	locationID, _ := id.Parse(r.LocationID)

	doc := kitchenproduction.NewKitchenProduction(locationID)
	doc.Date = r.Date
	doc.Remarks = r.Remarks

	for _, line := range r.Lines {
		itemID, _ := id.Parse(line.ItemID)
		doc.AddLine(itemID, line.Quantity, line.CostRate)
	}

	return doc
}

// UpdateKitchenProductionRequest represents a request to update a
// production receipt.
type UpdateKitchenProductionRequest struct {
	Date    *time.Time                     `json:"date,omitempty"`
	Remarks *string                        `json:"remarks,omitempty"`
	Lines   []KitchenProductionLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateKitchenProductionRequest) ApplyTo(doc *kitchenproduction.KitchenProduction) {
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
			doc.AddLine(itemID, line.Quantity, line.CostRate)
		}
	}
}
