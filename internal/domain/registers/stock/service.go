// Package stock provides the stock movement register service.
package stock

import (
	"context"
	"fmt"
	"time"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/pkg/logger"
)

// Service provides business operations for the stock register.
// Transactions are managed by the caller (posting engine).
type Service struct {
	repo Repository
}

// NewService creates a new stock register service.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// RecordMovements records stock movements from a document posting.
// This is called during document posting within a transaction.
// Quantities are signed: inbound positive, outbound negative.
func (s *Service) RecordMovements(ctx context.Context, movements []entity.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	for i, m := range movements {
		if m.Quantity == 0 {
			return apperror.NewValidation(fmt.Sprintf("movement %d: quantity must be non-zero", i))
		}
		if m.TransactionNo == "" {
			return apperror.NewValidation(fmt.Sprintf("movement %d: transaction number is required", i))
		}
		if id.IsNil(m.ItemID) {
			return apperror.NewValidation(fmt.Sprintf("movement %d: item is required", i))
		}
		if id.IsNil(m.LocationID) {
			return apperror.NewValidation(fmt.Sprintf("movement %d: location is required", i))
		}
	}

	if err := s.repo.CreateMovements(ctx, movements); err != nil {
		return fmt.Errorf("create movements: %w", err)
	}

	logger.Info(ctx, "recorded stock movements",
		"count", len(movements),
		"transaction_no", movements[0].TransactionNo,
	)

	return nil
}

// RemoveByTransactionNo hard deletes all movements for a transaction number.
// Called before re-posting an edited document and during unposting.
func (s *Service) RemoveByTransactionNo(ctx context.Context, transactionNo string) error {
	if transactionNo == "" {
		return nil
	}

	if err := s.repo.DeleteByTransactionNo(ctx, transactionNo); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}

	logger.Info(ctx, "removed stock movements", "transaction_no", transactionNo)

	return nil
}

// GetByTransactionNo retrieves the movements recorded under a number.
func (s *Service) GetByTransactionNo(ctx context.Context, transactionNo string) ([]entity.StockMovement, error) {
	return s.repo.GetByTransactionNo(ctx, transactionNo)
}

// GetSummary computes period totals for one item at one location.
func (s *Service) GetSummary(ctx context.Context, filter SummaryFilter) (Summary, error) {
	return s.repo.Summarize(ctx, filter)
}

// GetLocationSummary computes period totals for every item at a location.
func (s *Service) GetLocationSummary(ctx context.Context, locationID id.ID, from, to time.Time) ([]Summary, error) {
	return s.repo.SummarizeByLocation(ctx, locationID, from, to)
}

// GetMovementHistory returns movement rows for an item.
func (s *Service) GetMovementHistory(ctx context.Context, itemID id.ID, filter MovementFilter) ([]entity.StockMovement, error) {
	return s.repo.MovementHistory(ctx, itemID, filter)
}

// ClosingQuantity returns the signed stock balance for an item at a
// location as of the end of the given date.
func (s *Service) ClosingQuantity(ctx context.Context, itemID, locationID id.ID, asOf time.Time) (types.Quantity, error) {
	summary, err := s.repo.Summarize(ctx, SummaryFilter{
		ItemID:     itemID,
		LocationID: locationID,
		To:         asOf,
	})
	if err != nil {
		return 0, fmt.Errorf("summarize: %w", err)
	}
	return summary.Closing, nil
}

// AdjustmentDelta computes the signed movement needed to bring the closing
// balance to the target quantity. A zero delta means no movement is written,
// which makes re-posting the same adjustment idempotent.
func AdjustmentDelta(target, closing types.Quantity) types.Quantity {
	return target - closing
}
