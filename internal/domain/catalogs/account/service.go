package account

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/tx"
	"bakehouse/internal/domain"
)

// Service provides business logic for the LedgerAccount catalog.
type Service struct {
	*domain.CatalogService[*LedgerAccount]
	repo Repository
}

// NewService creates a new LedgerAccount service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(repo, txManager, "account")

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkCodeUnique)

	return svc
}

// checkCodeUnique rejects duplicate account codes.
func (s *Service) checkCodeUnique(ctx context.Context, acc *LedgerAccount) error {
	if acc.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	if exists, err := s.repo.ExistsByCode(ctx, acc.Code); err == nil && exists {
		return apperror.NewDuplicate("account", "code", acc.Code)
	}
	return nil
}

// FindByGroup retrieves accounts in the given group.
func (s *Service) FindByGroup(ctx context.Context, group AccountGroup, filter domain.ListFilter) (domain.ListResult[*LedgerAccount], error) {
	return s.repo.FindByGroup(ctx, group, filter)
}
