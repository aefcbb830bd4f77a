package voucher

import (
	"bakehouse/internal/domain"
)

// Repository defines the interface for VoucherType persistence.
type Repository interface {
	domain.CatalogRepository[*VoucherType]
}
