// Package entity provides core domain entities.
package entity

import (
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

// MovementType tags a stock movement with its business origin.
type MovementType string

const (
	MovementPurchase          MovementType = "purchase"
	MovementPurchaseReturn    MovementType = "purchase_return"
	MovementSale              MovementType = "sale"
	MovementSaleReturn        MovementType = "sale_return"
	MovementAdjustment        MovementType = "adjustment"
	MovementKitchenIssue      MovementType = "kitchen_issue"
	MovementKitchenProduction MovementType = "kitchen_production"
)

// StockMovement is one signed quantity row in the stock ledger.
// Movements are immutable. When the originating document is edited, the
// whole set for its transaction number is deleted and reinserted, never
// updated in place.
type StockMovement struct {
	// LineID is unique identifier for this movement line (UUIDv7)
	LineID id.ID `db:"line_id" json:"lineId"`

	// Dimensions
	ItemID     id.ID `db:"item_id" json:"itemId"`
	LocationID id.ID `db:"location_id" json:"locationId"`

	// TransactionNo is the transaction number of the originating document.
	// Edit/reversal looks movements up by this, not by row id.
	TransactionNo   string    `db:"transaction_no" json:"transactionNo"`
	TransactionDate time.Time `db:"transaction_date" json:"transactionDate"`

	// MovementType: purchase, sale, kitchen_issue, adjustment, ...
	MovementType MovementType `db:"movement_type" json:"movementType"`

	// Quantity is signed: positive = inbound, negative = outbound.
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// NetRate is the unit cost basis. Nil for pure quantity movements
	// (kitchen issues, adjustments, sales).
	NetRate *types.Money `db:"net_rate" json:"netRate,omitempty"`

	// CreatedAt is when the movement was recorded
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewStockMovement creates a movement with a generated LineID.
// Quantity carries the sign; rated inbound movements pass a non-nil netRate.
func NewStockMovement(
	itemID, locationID id.ID,
	movementType MovementType,
	quantity types.Quantity,
	netRate *types.Money,
	transactionNo string,
	transactionDate time.Time,
) StockMovement {
	return StockMovement{
		LineID:          id.New(),
		ItemID:          itemID,
		LocationID:      locationID,
		TransactionNo:   transactionNo,
		TransactionDate: transactionDate,
		MovementType:    movementType,
		Quantity:        quantity,
		NetRate:         netRate,
		CreatedAt:       time.Now().UTC(),
	}
}

// IsInbound reports whether the movement increases stock.
func (m *StockMovement) IsInbound() bool {
	return m.Quantity.IsPositive()
}
