package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"bakehouse/internal/domain"
	"bakehouse/internal/domain/catalogs/location"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const locationTable = "cat_locations"

// LocationRepo implements location.Repository.
type LocationRepo struct {
	*BaseCatalogRepo[*location.Location]
}

// NewLocationRepo creates a new location repository.
func NewLocationRepo(txManager *postgres.TxManager) *LocationRepo {
	return &LocationRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*location.Location](
			txManager,
			locationTable,
			postgres.ExtractDBColumns[location.Location](),
			func() *location.Location { return &location.Location{} },
		),
	}
}

// FindActive retrieves all active locations.
func (r *LocationRepo) FindActive(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*location.Location], error) {
	return r.findWhere(ctx, filter, squirrel.Eq{"active": true})
}
