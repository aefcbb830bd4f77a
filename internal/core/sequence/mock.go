package sequence

import (
	"context"
	"sync"
	"time"
)

// MockGenerator is a test implementation of Generator.
// Use in unit tests to avoid database dependencies. When NextFunc is nil it
// counts per scope+year+type key, formatting real numbers.
type MockGenerator struct {
	NextFunc func(ctx context.Context, cfg Config, date time.Time) (string, error)

	mu       sync.Mutex
	counters map[string]int64
}

// Next implements Generator.
func (m *MockGenerator) Next(ctx context.Context, cfg Config, date time.Time) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, cfg, date)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counters == nil {
		m.counters = make(map[string]int64)
	}
	key := Format(cfg, date, 0)
	m.counters[key]++
	return Format(cfg, date, m.counters[key]), nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
