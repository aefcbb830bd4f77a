package item

import (
	"context"

	"bakehouse/internal/domain"
)

// Repository defines the interface for Item persistence.
type Repository interface {
	domain.CatalogRepository[*Item]

	// FindByKind retrieves items of the given kind.
	FindByKind(ctx context.Context, kind ItemKind, filter domain.ListFilter) (domain.ListResult[*Item], error)
}
