package kitchenproduction

import (
	"context"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
)

// Repository defines operations for production receipt documents.
type Repository interface {
	Create(ctx context.Context, doc *KitchenProduction) error
	GetByID(ctx context.Context, docID id.ID) (*KitchenProduction, error)
	GetByNumber(ctx context.Context, number string) (*KitchenProduction, error)
	Update(ctx context.Context, doc *KitchenProduction) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*KitchenProduction], error)
}

// ListFilter for filtering production receipts.
type ListFilter struct {
	domain.ListFilter

	LocationID *id.ID
	DateFrom   *time.Time
	DateTo     *time.Time
}
