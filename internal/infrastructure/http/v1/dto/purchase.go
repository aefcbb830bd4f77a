package dto

import (
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/documents/purchase"
)

// CreatePurchaseRequest represents a request to create a purchase.
type CreatePurchaseRequest struct {
	Date              time.Time             `json:"date" binding:"required"`
	LocationID        string                `json:"locationId" binding:"required"`
	SupplierAccountID string                `json:"supplierAccountId" binding:"required"`
	PurchaseAccountID string                `json:"purchaseAccountId" binding:"required"`
	TaxAccountID      *string               `json:"taxAccountId,omitempty"`
	InvoiceNo         string                `json:"invoiceNo,omitempty"`
	InvoiceDate       *time.Time            `json:"invoiceDate,omitempty"`
	Remarks           string                `json:"remarks,omitempty"`
	Lines             []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PurchaseLineRequest represents a line in create/update request.
type PurchaseLineRequest struct {
	ItemID     string         `json:"itemId" binding:"required"`
	Quantity   types.Quantity `json:"quantity" binding:"required"`
	Rate       types.Money    `json:"rate"`
	TaxPercent types.Money    `json:"taxPercent"`
}

// ToEntity converts request to domain entity.
func (r *CreatePurchaseRequest) ToEntity() *purchase.Purchase {
	locationID, _ := id.Parse(r.LocationID)
	supplierID, _ := id.Parse(r.SupplierAccountID)
	purchaseID, _ := id.Parse(r.PurchaseAccountID)

	doc := purchase.NewPurchase(locationID, supplierID, purchaseID)
	doc.Date = r.Date
	doc.InvoiceNo = r.InvoiceNo
	doc.InvoiceDate = r.InvoiceDate
	doc.Remarks = r.Remarks

	if r.TaxAccountID != nil {
		if taxID, err := id.Parse(*r.TaxAccountID); err == nil {
			doc.TaxAccountID = &taxID
		}
	}

	for _, line := range r.Lines {
		itemID, _ := id.Parse(line.ItemID)
		doc.AddLine(itemID, line.Quantity, line.Rate, line.TaxPercent)
	}

	return doc
}

// UpdatePurchaseRequest represents a request to update a purchase.
type UpdatePurchaseRequest struct {
	Date              *time.Time            `json:"date,omitempty"`
	SupplierAccountID *string               `json:"supplierAccountId,omitempty"`
	PurchaseAccountID *string               `json:"purchaseAccountId,omitempty"`
	TaxAccountID      *string               `json:"taxAccountId,omitempty"`
	InvoiceNo         *string               `json:"invoiceNo,omitempty"`
	InvoiceDate       *time.Time            `json:"invoiceDate,omitempty"`
	Remarks           *string               `json:"remarks,omitempty"`
	Lines             []PurchaseLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity. The location never
// changes: the transaction number is already minted in its series.
func (r *UpdatePurchaseRequest) ApplyTo(doc *purchase.Purchase) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.SupplierAccountID != nil {
		if parsed, err := id.Parse(*r.SupplierAccountID); err == nil {
			doc.SupplierAccountID = parsed
		}
	}
	if r.PurchaseAccountID != nil {
		if parsed, err := id.Parse(*r.PurchaseAccountID); err == nil {
			doc.PurchaseAccountID = parsed
		}
	}
	if r.TaxAccountID != nil {
		if parsed, err := id.Parse(*r.TaxAccountID); err == nil {
			doc.TaxAccountID = &parsed
		}
	}
	if r.InvoiceNo != nil {
		doc.InvoiceNo = *r.InvoiceNo
	}
	if r.InvoiceDate != nil {
		doc.InvoiceDate = r.InvoiceDate
	}
	if r.Remarks != nil {
		doc.Remarks = *r.Remarks
	}

	if r.Lines != nil {
		doc.Lines = doc.Lines[:0]
		for _, line := range r.Lines {
			itemID, _ := id.Parse(line.ItemID)
			doc.AddLine(itemID, line.Quantity, line.Rate, line.TaxPercent)
		}
	}
}
