package purchase

import (
	"context"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
)

// Repository defines operations for purchase documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Purchase) error
	GetByID(ctx context.Context, docID id.ID) (*Purchase, error)
	GetByNumber(ctx context.Context, number string) (*Purchase, error)
	Update(ctx context.Context, doc *Purchase) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	// Line operations. SaveLines flips the previous revision inactive and
	// inserts the new one; GetLines returns the active revision.
	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, revisionNo int, lines []Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*Purchase, error)
}

// ListFilter for filtering purchases.
type ListFilter struct {
	domain.ListFilter

	LocationID        *id.ID
	SupplierAccountID *id.ID
	DateFrom          *time.Time
	DateTo            *time.Time
}
