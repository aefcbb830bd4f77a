package voucher

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/tx"
	"bakehouse/internal/domain"
)

// Service provides business logic for the VoucherType catalog.
type Service struct {
	*domain.CatalogService[*VoucherType]
	repo Repository
}

// NewService creates a new VoucherType service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(repo, txManager, "voucher type")

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkCodeUnique)

	return svc
}

// checkCodeUnique rejects duplicate voucher type codes.
func (s *Service) checkCodeUnique(ctx context.Context, vt *VoucherType) error {
	if vt.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	if exists, err := s.repo.ExistsByCode(ctx, vt.Code); err == nil && exists {
		return apperror.NewDuplicate("voucher type", "code", vt.Code)
	}
	return nil
}
