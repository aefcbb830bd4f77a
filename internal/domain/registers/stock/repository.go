// Package stock provides the stock movement register.
package stock

import (
	"context"
	"time"

	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

// Repository defines operations for the stock register.
type Repository interface {
	// Movement operations

	// CreateMovements batch inserts movements (used during posting)
	CreateMovements(ctx context.Context, movements []entity.StockMovement) error

	// DeleteByTransactionNo removes all movements recorded under a
	// transaction number. Used before re-posting an edited document.
	DeleteByTransactionNo(ctx context.Context, transactionNo string) error

	// GetByTransactionNo retrieves all movements for a transaction number
	GetByTransactionNo(ctx context.Context, transactionNo string) ([]entity.StockMovement, error)

	// Reporting

	// Summarize computes opening, in, out, closing, and weighted-average
	// rate for one item at one location over a period.
	Summarize(ctx context.Context, filter SummaryFilter) (Summary, error)

	// SummarizeByLocation computes summaries for every item with movements
	// at a location over a period.
	SummarizeByLocation(ctx context.Context, locationID id.ID, from, to time.Time) ([]Summary, error)

	// MovementHistory returns movement rows for an item.
	MovementHistory(ctx context.Context, itemID id.ID, filter MovementFilter) ([]entity.StockMovement, error)
}

// SummaryFilter bounds a stock summary query.
type SummaryFilter struct {
	ItemID     id.ID
	LocationID id.ID
	From       time.Time
	To         time.Time
}

// MovementFilter for filtering movement history.
type MovementFilter struct {
	LocationID   *id.ID
	MovementType *entity.MovementType
	FromDate     *time.Time
	ToDate       *time.Time
	Limit        int
	Offset       int
}

// Summary holds period totals for one item at one location.
// Quantities are signed sums of the underlying movements; the average rate
// is weighted over rated inbound movements only.
type Summary struct {
	ItemID          id.ID          `json:"itemId"`
	LocationID      id.ID          `json:"locationId"`
	Opening         types.Quantity `json:"opening"`
	Inbound         types.Quantity `json:"inbound"`
	Outbound        types.Quantity `json:"outbound"`
	Closing         types.Quantity `json:"closing"`
	WeightedAvgRate types.Money    `json:"weightedAvgRate"`
}
