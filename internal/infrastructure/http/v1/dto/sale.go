package dto

import (
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/documents/sale"
)

// CreateSaleRequest represents a request to create a sale or sale return.
type CreateSaleRequest struct {
	Date              time.Time         `json:"date" binding:"required"`
	LocationID        string            `json:"locationId" binding:"required"`
	CustomerAccountID string            `json:"customerAccountId" binding:"required"`
	SaleAccountID     string            `json:"saleAccountId" binding:"required"`
	TaxAccountID      *string           `json:"taxAccountId,omitempty"`
	IsReturn          bool              `json:"isReturn,omitempty"`
	ReturnAgainstNo   string            `json:"returnAgainstNo,omitempty"`
	Remarks           string            `json:"remarks,omitempty"`
	Lines             []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// SaleLineRequest represents a line in create/update request.
type SaleLineRequest struct {
	ItemID     string         `json:"itemId" binding:"required"`
	Quantity   types.Quantity `json:"quantity" binding:"required"`
	Rate       types.Money    `json:"rate"`
	TaxPercent types.Money    `json:"taxPercent"`
}

// ToEntity converts request to domain entity.
func (r *CreateSaleRequest) ToEntity() *sale.Sale {
	locationID, _ := id.Parse(r.LocationID)
	customerID, _ := id.Parse(r.CustomerAccountID)
	saleAcctID, _ := id.Parse(r.SaleAccountID)

	var doc *sale.Sale
	if r.IsReturn {
		doc = sale.NewSaleReturn(locationID, customerID, saleAcctID, r.ReturnAgainstNo)
	} else {
		doc = sale.NewSale(locationID, customerID, saleAcctID)
	}
	doc.Date = r.Date
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

// UpdateSaleRequest represents a request to update a sale.
// The return flag is fixed at creation and cannot be flipped afterwards.
type UpdateSaleRequest struct {
	Date              *time.Time        `json:"date,omitempty"`
	CustomerAccountID *string           `json:"customerAccountId,omitempty"`
	SaleAccountID     *string           `json:"saleAccountId,omitempty"`
	TaxAccountID      *string           `json:"taxAccountId,omitempty"`
	Remarks           *string           `json:"remarks,omitempty"`
	Lines             []SaleLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateSaleRequest) ApplyTo(doc *sale.Sale) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.CustomerAccountID != nil {
		if parsed, err := id.Parse(*r.CustomerAccountID); err == nil {
			doc.CustomerAccountID = parsed
		}
	}
	if r.SaleAccountID != nil {
		if parsed, err := id.Parse(*r.SaleAccountID); err == nil {
			doc.SaleAccountID = parsed
		}
	}
	if r.TaxAccountID != nil {
		if parsed, err := id.Parse(*r.TaxAccountID); err == nil {
			doc.TaxAccountID = &parsed
		}
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
