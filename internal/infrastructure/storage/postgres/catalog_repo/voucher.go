package catalog_repo

import (
	"bakehouse/internal/domain/catalogs/voucher"
	"bakehouse/internal/infrastructure/storage/postgres"
)

const voucherTypeTable = "cat_voucher_types"

// VoucherTypeRepo implements voucher.Repository.
type VoucherTypeRepo struct {
	*BaseCatalogRepo[*voucher.VoucherType]
}

// NewVoucherTypeRepo creates a new voucher type repository.
func NewVoucherTypeRepo(txManager *postgres.TxManager) *VoucherTypeRepo {
	return &VoucherTypeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*voucher.VoucherType](
			txManager,
			voucherTypeTable,
			postgres.ExtractDBColumns[voucher.VoucherType](),
			func() *voucher.VoucherType { return &voucher.VoucherType{} },
		),
	}
}
