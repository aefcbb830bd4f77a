package dto

import (
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/documents/order"
)

// CreateOrderRequest represents a request to create a customer order.
type CreateOrderRequest struct {
	Date              time.Time          `json:"date" binding:"required"`
	LocationID        string             `json:"locationId" binding:"required"`
	CustomerAccountID string             `json:"customerAccountId" binding:"required"`
	DeliveryDate      *time.Time         `json:"deliveryDate,omitempty"`
	Remarks           string             `json:"remarks,omitempty"`
	Lines             []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// OrderLineRequest represents a line in create/update request.
type OrderLineRequest struct {
	ItemID   string         `json:"itemId" binding:"required"`
	Quantity types.Quantity `json:"quantity" binding:"required"`
	Rate     types.Money    `json:"rate"`
}

// ToEntity converts request to domain entity.
func (r *CreateOrderRequest) ToEntity() *order.Order {
	locationID, _ := id.Parse(r.LocationID)
	customerID, _ := id.Parse(r.CustomerAccountID)

	doc := order.NewOrder(locationID, customerID)
	doc.Date = r.Date
	doc.DeliveryDate = r.DeliveryDate
	doc.Remarks = r.Remarks

	for _, line := range r.Lines {
		itemID, _ := id.Parse(line.ItemID)
		doc.AddLine(itemID, line.Quantity, line.Rate)
	}

	return doc
}

// UpdateOrderRequest represents a request to update an order.
// Status changes go through the confirm/fulfill/cancel endpoints.
type UpdateOrderRequest struct {
	Date              *time.Time         `json:"date,omitempty"`
	CustomerAccountID *string            `json:"customerAccountId,omitempty"`
	DeliveryDate      *time.Time         `json:"deliveryDate,omitempty"`
	Remarks           *string            `json:"remarks,omitempty"`
	Lines             []OrderLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateOrderRequest) ApplyTo(doc *order.Order) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.CustomerAccountID != nil {
		if parsed, err := id.Parse(*r.CustomerAccountID); err == nil {
			doc.CustomerAccountID = parsed
		}
	}
	if r.DeliveryDate != nil {
		doc.DeliveryDate = r.DeliveryDate
	}
	if r.Remarks != nil {
		doc.Remarks = *r.Remarks
	}

	if r.Lines != nil {
		doc.Lines = doc.Lines[:0]
		for _, line := range r.Lines {
			itemID, _ := id.Parse(line.ItemID)
			doc.AddLine(itemID, line.Quantity, line.Rate)
		}
	}
}

// FulfillOrderRequest links an order to the sale that closed it.
type FulfillOrderRequest struct {
	SaleNo string `json:"saleNo" binding:"required"`
}
