package sequence

import (
	"fmt"
	"strconv"
	"time"

	"bakehouse/internal/core/fiscal"
)

// Format builds the transaction number for the given sequence value.
// Pattern: {ScopePrefix}{two-digit fiscal suffix}{DocCode}{zero-padded n}.
func Format(cfg Config, date time.Time, n int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = DefaultPadWidth
	}
	return fmt.Sprintf("%s%02d%s%0*d", cfg.ScopePrefix, fiscal.Suffix(date), cfg.DocCode, padWidth, n)
}

// TrailingSequence parses the trailing numeric part of a transaction number.
// Returns an error if the number is too short or the suffix is not numeric.
func TrailingSequence(number string, padWidth int) (int64, error) {
	if padWidth <= 0 {
		padWidth = DefaultPadWidth
	}
	if len(number) < padWidth {
		return 0, fmt.Errorf("number %q is shorter than sequence width %d", number, padWidth)
	}
	n, err := strconv.ParseInt(number[len(number)-padWidth:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse sequence suffix of %q: %w", number, err)
	}
	return n, nil
}
