package adjustment

import (
	"context"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
)

// Repository defines operations for stock adjustment documents.
type Repository interface {
	Create(ctx context.Context, doc *StockAdjustment) error
	GetByID(ctx context.Context, docID id.ID) (*StockAdjustment, error)
	GetByNumber(ctx context.Context, number string) (*StockAdjustment, error)
	Update(ctx context.Context, doc *StockAdjustment) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockAdjustment], error)
}

// ListFilter for filtering adjustments.
type ListFilter struct {
	domain.ListFilter

	LocationID *id.ID
	DateFrom   *time.Time
	DateTo     *time.Time
}
