package location

import (
	"context"

	"bakehouse/internal/domain"
)

// Repository defines the interface for Location persistence.
type Repository interface {
	domain.CatalogRepository[*Location]

	// FindActive retrieves all active locations.
	FindActive(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Location], error)
}
