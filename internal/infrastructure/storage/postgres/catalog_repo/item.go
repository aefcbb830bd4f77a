package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"bakehouse/internal/domain"
	"bakehouse/internal/domain/catalogs/item"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const itemTable = "cat_items"

// ItemRepo implements item.Repository.
type ItemRepo struct {
	*BaseCatalogRepo[*item.Item]
}

// NewItemRepo creates a new item repository.
func NewItemRepo(txManager *postgres.TxManager) *ItemRepo {
	return &ItemRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*item.Item](
			txManager,
			itemTable,
			postgres.ExtractDBColumns[item.Item](),
			func() *item.Item { return &item.Item{} },
		),
	}
}

// FindByKind retrieves items of the given kind.
func (r *ItemRepo) FindByKind(ctx context.Context, kind item.ItemKind, filter domain.ListFilter) (domain.ListResult[*item.Item], error) {
	return r.findWhere(ctx, filter, squirrel.Eq{"kind": kind})
}
