// Package kitchenissue provides the KitchenIssue document service.
package kitchenissue

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

// Service provides business operations for kitchen issue documents.
type Service struct {
	repo      Repository
	engine    *posting.Engine
	locations *location.Service
}

// NewService creates a new kitchen issue service.
func NewService(repo Repository, engine *posting.Engine, locations *location.Service) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		locations: locations,
	}
}

// Save posts a kitchen issue document.
func (s *Service) Save(ctx context.Context, doc *KitchenIssue) error {
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

// GetByID retrieves a kitchen issue with its active line revision.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*KitchenIssue, error) {
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

// Delete unposts and soft deletes a kitchen issue.
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

// Recover re-posts a soft-deleted kitchen issue under its original number.
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

// List retrieves kitchen issues with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*KitchenIssue], error) {
	return s.repo.List(ctx, filter)
}
