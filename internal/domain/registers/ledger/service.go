// Package ledger provides the accounting register service.
package ledger

import (
	"context"
	"fmt"
	"time"

	"bakehouse/internal/core/fiscal"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/pkg/logger"
)

// Service provides business operations for the accounting register.
// Transactions are managed by the caller (posting engine).
type Service struct {
	repo  Repository
	years fiscal.Resolver
}

// NewService creates a new ledger register service.
func NewService(repo Repository, years fiscal.Resolver) *Service {
	return &Service{
		repo:  repo,
		years: years,
	}
}

// Repost replaces the posting set for a source document.
//
// The balance invariant is validated before any write. When an earlier
// posting exists its financial year must still be open: a locked year
// rejects retroactive edits even if the new date falls in an open year.
// The superseded set is soft deleted, never destroyed, so the audit trail
// of prior revisions survives.
func (s *Service) Repost(ctx context.Context, posting *Posting) error {
	if err := posting.Validate(ctx); err != nil {
		return err
	}

	previous, err := s.repo.FindActiveByReference(ctx, posting.ReferenceID)
	if err != nil {
		return fmt.Errorf("find previous posting: %w", err)
	}
	if previous != nil {
		if err := s.checkYearOpen(ctx, previous.Date); err != nil {
			return err
		}
		if _, err := s.repo.DeactivateByReference(ctx, posting.ReferenceID); err != nil {
			return fmt.Errorf("deactivate previous posting: %w", err)
		}
	}

	year, err := s.years.ByDate(ctx, posting.Date)
	if err != nil {
		return fmt.Errorf("resolve financial year: %w", err)
	}
	if err := year.CheckOpen(); err != nil {
		return err
	}
	posting.SetFiscalYearID(year.ID)

	if err := s.repo.CreatePosting(ctx, posting); err != nil {
		return fmt.Errorf("create posting: %w", err)
	}

	logger.Info(ctx, "reposted ledger entries",
		"reference_no", posting.ReferenceNo,
		"reference_type", posting.ReferenceType,
		"entries", len(posting.Entries),
	)

	return nil
}

// Remove soft deletes the posting set for a source document.
// Rejected when the posting's financial year is locked.
func (s *Service) Remove(ctx context.Context, refID id.ID) error {
	previous, err := s.repo.FindActiveByReference(ctx, refID)
	if err != nil {
		return fmt.Errorf("find posting: %w", err)
	}
	if previous == nil {
		return nil
	}

	if err := s.checkYearOpen(ctx, previous.Date); err != nil {
		return err
	}

	if _, err := s.repo.DeactivateByReference(ctx, refID); err != nil {
		return fmt.Errorf("deactivate posting: %w", err)
	}

	logger.Info(ctx, "removed ledger posting", "reference_no", previous.ReferenceNo)

	return nil
}

// GetByReference retrieves the active posting for a source document.
func (s *Service) GetByReference(ctx context.Context, refID id.ID) (*Posting, error) {
	return s.repo.FindActiveByReference(ctx, refID)
}

// GetAccountStatement lists entries for an account over a period.
func (s *Service) GetAccountStatement(ctx context.Context, accountID id.ID, filter EntryFilter) ([]AccountEntry, error) {
	return s.repo.AccountEntries(ctx, accountID, filter)
}

// GetAccountBalance computes the net balance for an account as of a date.
func (s *Service) GetAccountBalance(ctx context.Context, accountID id.ID, asOf time.Time) (types.Money, error) {
	return s.repo.AccountBalance(ctx, accountID, asOf)
}

// GetTrialBalance computes per-account totals over a period.
func (s *Service) GetTrialBalance(ctx context.Context, from, to time.Time) ([]TrialBalanceRow, error) {
	return s.repo.TrialBalance(ctx, from, to)
}

func (s *Service) checkYearOpen(ctx context.Context, date time.Time) error {
	year, err := s.years.ByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("resolve financial year: %w", err)
	}
	return year.CheckOpen()
}
