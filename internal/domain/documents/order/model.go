// Package order provides the customer Order document.
// Orders are numbered like every other document but write no stock
// movements and no accounting entries until fulfilled by a sale.
package order

import (
	"context"
	"time"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/posting"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

// Order represents a customer order.
type Order struct {
	entity.Document

	// LocationID is the outlet taking the order
	LocationID id.ID `db:"location_id" json:"locationId"`

	// CustomerAccountID is the ordering customer's account
	CustomerAccountID id.ID `db:"customer_account_id" json:"customerAccountId"`

	// Status is the lifecycle state
	Status Status `db:"status" json:"status"`

	// DeliveryDate is when the order is due
	DeliveryDate *time.Time `db:"delivery_date" json:"deliveryDate,omitempty"`

	// FulfilledByNo is the sale transaction number that closed this order
	FulfilledByNo string `db:"fulfilled_by_no" json:"fulfilledByNo,omitempty"`

	// TotalAmount is the order value (calculated from lines)
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`

	// Table part: ordered items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one ordered item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID   id.ID          `db:"item_id" json:"itemId"`
	Quantity types.Quantity `db:"quantity" json:"quantity"`
	Rate     types.Money    `db:"rate" json:"rate"`
	Amount   types.Money    `db:"amount" json:"amount"`
}

// NewOrder creates a new order document.
func NewOrder(locationID, customerAccountID id.ID) *Order {
	return &Order{
		Document:          entity.NewDocument(),
		LocationID:        locationID,
		CustomerAccountID: customerAccountID,
		Status:            StatusPending,
		TotalAmount:       types.Zero(),
		Lines:             make([]Line, 0),
	}
}

// AddLine adds an ordered item line and recalculates the total.
func (o *Order) AddLine(itemID id.ID, quantity types.Quantity, rate types.Money) {
	o.Lines = append(o.Lines, Line{
		LineID:   id.New(),
		LineNo:   len(o.Lines) + 1,
		ItemID:   itemID,
		Quantity: quantity,
		Rate:     rate,
		Amount:   rate.Mul(quantity.Decimal()).Round(2),
	})
	o.RecalculateTotals()
}

// RecalculateTotals updates the order total from lines.
func (o *Order) RecalculateTotals() {
	o.TotalAmount = types.Zero()
	for _, line := range o.Lines {
		o.TotalAmount = o.TotalAmount.Add(line.Amount)
	}
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(o.LocationID) {
		return apperror.NewValidation("location is required").
			WithDetail("field", "locationId")
	}
	if id.IsNil(o.CustomerAccountID) {
		return apperror.NewValidation("customer account is required").
			WithDetail("field", "customerAccountId")
	}
	if !isValidStatus(o.Status) {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}
	if len(o.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range o.Lines {
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
func (o *Order) DocumentType() string {
	return DocumentType
}

// Confirm moves a pending order to confirmed.
func (o *Order) Confirm() error {
	return o.transition(StatusPending, StatusConfirmed)
}

// Fulfill closes a confirmed order against a sale.
func (o *Order) Fulfill(saleNo string) error {
	if err := o.transition(StatusConfirmed, StatusFulfilled); err != nil {
		return err
	}
	o.FulfilledByNo = saleNo
	return nil
}

// Cancel aborts a pending or confirmed order.
func (o *Order) Cancel() error {
	if o.Status != StatusPending && o.Status != StatusConfirmed {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule, "order cannot be cancelled").
			WithDetail("status", string(o.Status))
	}
	o.Status = StatusCancelled
	return nil
}

func (o *Order) transition(from, to Status) error {
	if o.Status != from {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule, "invalid order status transition").
			WithDetail("from", string(o.Status)).
			WithDetail("to", string(to))
	}
	o.Status = to
	return nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

// Ensure interface compliance at compile time. Orders are postable but
// expose no stock or ledger sources.
var _ posting.Postable = (*Order)(nil)
