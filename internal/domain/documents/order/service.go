// Package order provides the customer Order document service.
package order

import (
	"context"
	"fmt"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/sequence"
	"bakehouse/internal/domain"
	"bakehouse/internal/domain/catalogs/location"
	"bakehouse/internal/domain/posting"
)

// Service provides business operations for order documents.
// Orders exercise the movement-less path of the posting engine: they get
// numbers, revisions, and audit rows but touch no registers.
type Service struct {
	repo      Repository
	engine    *posting.Engine
	locations *location.Service
}

// NewService creates a new order service.
func NewService(repo Repository, engine *posting.Engine, locations *location.Service) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		locations: locations,
	}
}

// Save posts an order document.
func (s *Service) Save(ctx context.Context, doc *Order) error {
	doc.RecalculateTotals()

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

// GetByID retrieves an order with its active line revision.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Order, error) {
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

// Confirm moves a pending order to confirmed.
func (s *Service) Confirm(ctx context.Context, docID id.ID) error {
	return s.updateStatus(ctx, docID, func(doc *Order) error {
		return doc.Confirm()
	})
}

// Fulfill closes a confirmed order against a sale number.
func (s *Service) Fulfill(ctx context.Context, docID id.ID, saleNo string) error {
	return s.updateStatus(ctx, docID, func(doc *Order) error {
		return doc.Fulfill(saleNo)
	})
}

// Cancel aborts a pending or confirmed order.
func (s *Service) Cancel(ctx context.Context, docID id.ID) error {
	return s.updateStatus(ctx, docID, func(doc *Order) error {
		return doc.Cancel()
	})
}

func (s *Service) updateStatus(ctx context.Context, docID id.ID, change func(*Order) error) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if err := change(doc); err != nil {
		return err
	}
	return s.Save(ctx, doc)
}

// Delete soft deletes an order.
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

// List retrieves orders with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error) {
	return s.repo.List(ctx, filter)
}
