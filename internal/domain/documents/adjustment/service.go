// Package adjustment provides the StockAdjustment document service.
package adjustment

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

// Service provides business operations for stock adjustment documents.
type Service struct {
	repo      Repository
	engine    *posting.Engine
	locations *location.Service
}

// NewService creates a new adjustment service.
func NewService(repo Repository, engine *posting.Engine, locations *location.Service) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		locations: locations,
	}
}

// Save posts an adjustment document. Deltas are computed inside the posting
// transaction and persisted with the lines.
func (s *Service) Save(ctx context.Context, doc *StockAdjustment) error {
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

// GetByID retrieves an adjustment with its active line revision.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*StockAdjustment, error) {
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

// Delete unposts and soft deletes an adjustment.
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

// Recover re-posts a soft-deleted adjustment. Deltas are recomputed against
// the current register state, keeping the target quantities authoritative.
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
		if err := s.repo.SetDeletionMark(ctx, docID, false); err != nil {
			return err
		}
		// Deltas may have changed; persist the recomputed revision.
		doc.NextRevision()
		doc.Touch()
		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}
		return s.repo.SaveLines(ctx, doc.ID, doc.RevisionNo, doc.Lines)
	}

	return s.engine.Recover(ctx, doc, persist)
}

// List retrieves adjustments with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockAdjustment], error) {
	return s.repo.List(ctx, filter)
}
