package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"bakehouse/internal/domain"
	"bakehouse/internal/domain/catalogs/account"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const accountTable = "cat_accounts"

// AccountRepo implements account.Repository.
type AccountRepo struct {
	*BaseCatalogRepo[*account.LedgerAccount]
}

// NewAccountRepo creates a new ledger account repository.
func NewAccountRepo(txManager *postgres.TxManager) *AccountRepo {
	return &AccountRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*account.LedgerAccount](
			txManager,
			accountTable,
			postgres.ExtractDBColumns[account.LedgerAccount](),
			func() *account.LedgerAccount { return &account.LedgerAccount{} },
		),
	}
}

// FindByGroup retrieves accounts in the given group.
func (r *AccountRepo) FindByGroup(ctx context.Context, group account.AccountGroup, filter domain.ListFilter) (domain.ListResult[*account.LedgerAccount], error) {
	return r.findWhere(ctx, filter, squirrel.Eq{"account_group": group})
}
