// Package kitchenproduction provides the KitchenProduction document service.
package kitchenproduction

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

// Service provides business operations for production receipt documents.
type Service struct {
	repo      Repository
	engine    *posting.Engine
	locations *location.Service
}

// NewService creates a new production receipt service.
func NewService(repo Repository, engine *posting.Engine, locations *location.Service) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		locations: locations,
	}
}

// Save posts a production receipt document.
func (s *Service) Save(ctx context.Context, doc *KitchenProduction) error {
	loc, err := s.locations.GetByID(ctx, doc.LocationID)
	if err != nil {
		return err
	}
	cfg := sequence.NewConfig(loc.SequencePrefix(), DocCode)

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

// GetByID retrieves a production receipt with its active line revision.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*KitchenProduction, error) {
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

// Delete unposts and soft deletes a production receipt.
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

// Recover re-posts a soft-deleted production receipt.
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

// List retrieves production receipts with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*KitchenProduction], error) {
	return s.repo.List(ctx, filter)
}
