// Package purchase provides the Purchase document service.
package purchase

import (
	"context"
	"fmt"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/sequence"
	"bakehouse/internal/domain"
	"bakehouse/internal/domain/catalogs/location"
	"bakehouse/internal/domain/posting"
)

// Service provides business operations for purchase documents.
type Service struct {
	repo      Repository
	engine    *posting.Engine
	locations *location.Service
}

// NewService creates a new purchase service.
func NewService(repo Repository, engine *posting.Engine, locations *location.Service) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		locations: locations,
	}
}

// Save posts a purchase document. New documents get a transaction number
// scoped to the receiving location; edited documents keep theirs and have
// their movements and posting replaced.
func (s *Service) Save(ctx context.Context, doc *Purchase) error {
	doc.RecalculateTotals()

	cfg, err := s.numberConfig(ctx, doc.LocationID)
	if err != nil {
		return err
	}

	isNew := doc.Number == ""

	persist := func(ctx context.Context) error {
		doc.NextRevision()
		if isNew {
			if err := s.repo.Create(ctx, doc); err != nil {
				return fmt.Errorf("create document: %w", err)
			}
		} else {
			doc.Touch()
			if err := s.repo.Update(ctx, doc); err != nil {
				return fmt.Errorf("update document: %w", err)
			}
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.RevisionNo, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	}

	return s.engine.Save(ctx, doc, cfg, persist)
}

// GetByID retrieves a purchase with its active line revision.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Purchase, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// GetByNumber retrieves a purchase by transaction number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Purchase, error) {
	doc, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Delete unposts and soft deletes a purchase.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	persist := func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, docID, true)
	}

	return s.engine.Remove(ctx, doc, persist)
}

// Recover re-posts a soft-deleted purchase under its original number.
func (s *Service) Recover(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if !doc.IsDeleted() {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule, "document is not deleted").
			WithDetail("id", docID.String())
	}
	doc.Undelete()

	persist := func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, docID, false)
	}

	return s.engine.Recover(ctx, doc, persist)
}

// List retrieves purchases with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) numberConfig(ctx context.Context, locationID id.ID) (sequence.Config, error) {
	loc, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		return sequence.Config{}, err
	}
	return sequence.NewConfig(loc.SequencePrefix(), DocCode), nil
}
