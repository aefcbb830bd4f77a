// Package journal provides the JournalVoucher document service.
package journal

import (
	"context"
	"fmt"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/sequence"
	"bakehouse/internal/domain"
	"bakehouse/internal/domain/catalogs/voucher"
	"bakehouse/internal/domain/posting"
	"bakehouse/internal/domain/registers/ledger"
)

// Service provides business operations for journal vouchers.
type Service struct {
	repo         Repository
	engine       *posting.Engine
	voucherTypes *voucher.Service
	ledger       *ledger.Service
}

// NewService creates a new voucher service.
func NewService(repo Repository, engine *posting.Engine, voucherTypes *voucher.Service, ledgerSvc *ledger.Service) *Service {
	return &Service{
		repo:         repo,
		engine:       engine,
		voucherTypes: voucherTypes,
		ledger:       ledgerSvc,
	}
}

// Save posts a voucher. The number series is scoped by voucher type, not
// location, so transfers between outlets number consistently.
func (s *Service) Save(ctx context.Context, doc *JournalVoucher) error {
	vt, err := s.voucherTypes.GetByID(ctx, doc.VoucherTypeID)
	if err != nil {
		return err
	}
	if !vt.Active {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule, "voucher type is inactive").
			WithDetail("voucherType", vt.Code)
	}
	cfg := sequence.NewConfig(vt.SequencePrefix(), DocCode)

	isNew := doc.Number == ""

	persist := func(ctx context.Context) error {
		doc.NextRevision()
		if isNew {
			if err := s.repo.Create(ctx, doc); err != nil {
				return fmt.Errorf("create voucher: %w", err)
			}
			return nil
		}
		doc.Touch()
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update voucher: %w", err)
		}
		return nil
	}

	return s.engine.Save(ctx, doc, cfg, persist)
}

// GetByID retrieves a voucher with its entries from the register.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*JournalVoucher, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	post, err := s.ledger.GetByReference(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get posting: %w", err)
	}
	if post != nil {
		doc.Entries = make([]EntryInput, 0, len(post.Entries))
		for _, e := range post.Entries {
			doc.Entries = append(doc.Entries, EntryInput{
				AccountID: e.AccountID,
				Debit:     e.Debit,
				Credit:    e.Credit,
				Remarks:   e.Remarks,
			})
		}
	}

	return doc, nil
}

// Delete unposts and soft deletes a voucher.
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

// Recover re-posts a soft-deleted voucher under its original number.
// The entries come from the last active posting revision; when the posting
// was soft-deleted along with the voucher, the caller must supply entries.
func (s *Service) Recover(ctx context.Context, docID id.ID, entries []EntryInput) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if !doc.IsDeleted() {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule, "document is not deleted").
			WithDetail("id", docID.String())
	}
	doc.Undelete()
	doc.Entries = entries

	persist := func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, docID, false)
	}

	return s.engine.Recover(ctx, doc, persist)
}

// List retrieves vouchers with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*JournalVoucher], error) {
	return s.repo.List(ctx, filter)
}
