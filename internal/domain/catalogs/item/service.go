package item

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/tx"
	"bakehouse/internal/domain"
)

// Service provides business logic for the Item catalog.
type Service struct {
	*domain.CatalogService[*Item]
	repo Repository
}

// NewService creates a new Item service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(repo, txManager, "item")

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkCodeUnique)

	return svc
}

// checkCodeUnique rejects duplicate item codes.
func (s *Service) checkCodeUnique(ctx context.Context, it *Item) error {
	if it.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	if exists, err := s.repo.ExistsByCode(ctx, it.Code); err == nil && exists {
		return apperror.NewDuplicate("item", "code", it.Code)
	}
	return nil
}

// FindByKind retrieves items of the given kind.
func (s *Service) FindByKind(ctx context.Context, kind ItemKind, filter domain.ListFilter) (domain.ListResult[*Item], error) {
	return s.repo.FindByKind(ctx, kind, filter)
}
