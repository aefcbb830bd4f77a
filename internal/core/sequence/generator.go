// Package sequence provides domain contracts for transaction numbering.
// Numbers follow the pattern {ScopePrefix}{FiscalYearSuffix}{DocCode}{6 digits},
// e.g. MUM24RM000001. Implementations live in the infrastructure layer.
package sequence

import (
	"context"
	"time"
)

// Generator issues the next transaction number for a scope, document type
// and fiscal year.
//
// The PostgreSQL implementation increments an atomic per-key counter inside
// the caller's transaction, so a rolled-back save never publishes a number
// (gaps are possible, duplicates are not). Numbers are never reused or
// renumbered after assignment, even if the owning header is soft-deleted.
type Generator interface {
	// Next generates the next number for the scope+year+type derived from
	// cfg and date.
	Next(ctx context.Context, cfg Config, date time.Time) (string, error)
}

// Config holds numbering configuration for one document type in one scope.
type Config struct {
	// ScopePrefix is the prefix code of the scope entity (location or
	// voucher type), e.g. "MUM".
	ScopePrefix string

	// DocCode is the two-letter document type code, e.g. "RM" for kitchen
	// issues, "PU" for purchases.
	DocCode string

	// PadWidth is the sequence width (default 6)
	PadWidth int
}

// DefaultPadWidth is the zero-padding width of the trailing sequence.
const DefaultPadWidth = 6

// NewConfig returns a Config with the default pad width.
func NewConfig(scopePrefix, docCode string) Config {
	return Config{
		ScopePrefix: scopePrefix,
		DocCode:     docCode,
		PadWidth:    DefaultPadWidth,
	}
}
