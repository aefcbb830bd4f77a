package order

import (
	"context"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
)

// Repository defines operations for order documents.
type Repository interface {
	Create(ctx context.Context, doc *Order) error
	GetByID(ctx context.Context, docID id.ID) (*Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
	Update(ctx context.Context, doc *Order) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error)
}

// ListFilter for filtering orders.
type ListFilter struct {
	domain.ListFilter

	LocationID        *id.ID
	CustomerAccountID *id.ID
	Status            *Status
	DateFrom          *time.Time
	DateTo            *time.Time
}
