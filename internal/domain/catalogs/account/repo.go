package account

import (
	"context"

	"bakehouse/internal/domain"
)

// Repository defines the interface for LedgerAccount persistence.
type Repository interface {
	domain.CatalogRepository[*LedgerAccount]

	// FindByGroup retrieves accounts in the given group.
	FindByGroup(ctx context.Context, group AccountGroup, filter domain.ListFilter) (domain.ListResult[*LedgerAccount], error)
}
