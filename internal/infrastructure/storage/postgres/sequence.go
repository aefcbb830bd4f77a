package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"bakehouse/internal/core/fiscal"
	"bakehouse/internal/core/sequence"
)

// SequenceService implements sequence.Generator on PostgreSQL.
//
// Each (scope prefix, fiscal suffix, doc code) key owns an atomic counter
// row. The upsert runs on the caller's querier, so inside a posting
// transaction the increment commits or rolls back with the document. A
// rolled-back save may leave a gap in the series but can never publish a
// duplicate.
type SequenceService struct {
	txManager *TxManager
}

// Ensure compile-time interface compliance.
var _ sequence.Generator = (*SequenceService)(nil)

// NewSequenceService creates a new number generator.
func NewSequenceService(txManager *TxManager) *SequenceService {
	return &SequenceService{txManager: txManager}
}

// Next generates the next transaction number for the scope+year+type.
func (s *SequenceService) Next(ctx context.Context, cfg sequence.Config, date time.Time) (string, error) {
	if cfg.ScopePrefix == "" || cfg.DocCode == "" {
		return "", fmt.Errorf("sequence config requires scope prefix and doc code")
	}

	suffix := fiscal.Suffix(date)

	var num int64
	err := s.txManager.GetQuerier(ctx).QueryRow(ctx, `
		INSERT INTO seq_document_numbers (scope_prefix, fiscal_suffix, doc_code, current_val)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (scope_prefix, fiscal_suffix, doc_code)
		DO UPDATE SET current_val = seq_document_numbers.current_val + 1
		RETURNING current_val
	`, cfg.ScopePrefix, suffix, cfg.DocCode).Scan(&num)
	if err != nil {
		return "", fmt.Errorf("next sequence value: %w", err)
	}

	return sequence.Format(cfg, date, num), nil
}

// Current returns the last issued value for a key without advancing it.
// Zero means the series has not started.
func (s *SequenceService) Current(ctx context.Context, cfg sequence.Config, date time.Time) (int64, error) {
	var num int64
	err := s.txManager.GetQuerier(ctx).QueryRow(ctx, `
		SELECT current_val FROM seq_document_numbers
		WHERE scope_prefix = $1 AND fiscal_suffix = $2 AND doc_code = $3
	`, cfg.ScopePrefix, fiscal.Suffix(date), cfg.DocCode).Scan(&num)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("current sequence value: %w", err)
	}
	return num, nil
}
