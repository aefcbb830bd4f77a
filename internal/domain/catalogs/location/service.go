package location

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/tx"
	"bakehouse/internal/domain"
)

// Service provides business logic for the Location catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Location]
	repo Repository
}

// NewService creates a new Location service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(repo, txManager, "location")

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkCodeUnique)

	return svc
}

// checkCodeUnique rejects duplicate location codes.
func (s *Service) checkCodeUnique(ctx context.Context, loc *Location) error {
	if loc.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	if exists, err := s.repo.ExistsByCode(ctx, loc.Code); err == nil && exists {
		return apperror.NewDuplicate("location", "code", loc.Code)
	}
	return nil
}

// FindActive retrieves all operational locations.
func (s *Service) FindActive(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Location], error) {
	return s.repo.FindActive(ctx, filter)
}
