package kitchenissue

import (
	"context"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
)

// Repository defines operations for kitchen issue documents.
type Repository interface {
	Create(ctx context.Context, doc *KitchenIssue) error
	GetByID(ctx context.Context, docID id.ID) (*KitchenIssue, error)
	GetByNumber(ctx context.Context, number string) (*KitchenIssue, error)
	Update(ctx context.Context, doc *KitchenIssue) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*KitchenIssue], error)
}

// ListFilter for filtering kitchen issues.
type ListFilter struct {
	domain.ListFilter

	LocationID *id.ID
	DateFrom   *time.Time
	DateTo     *time.Time
}
