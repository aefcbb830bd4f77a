package sequence

import (
	"context"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cfg := NewConfig("MUM", "RM")
	date := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	got := Format(cfg, date, 1)
	if got != "MUM24RM000001" {
		t.Errorf("expected MUM24RM000001, got %s", got)
	}

	got = Format(cfg, date, 123456)
	if got != "MUM24RM123456" {
		t.Errorf("expected MUM24RM123456, got %s", got)
	}
}

func TestFormat_FiscalYearRollover(t *testing.T) {
	cfg := NewConfig("MUM", "PU")

	// February 2025 still belongs to the fiscal year that started April 2024.
	feb := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	if got := Format(cfg, feb, 7); got != "MUM24PU000007" {
		t.Errorf("expected MUM24PU000007, got %s", got)
	}

	// April 2025 opens the next series.
	apr := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	if got := Format(cfg, apr, 1); got != "MUM25PU000001" {
		t.Errorf("expected MUM25PU000001, got %s", got)
	}
}

func TestTrailingSequence(t *testing.T) {
	n, err := TrailingSequence("MUM24RM000042", DefaultPadWidth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}

	if _, err := TrailingSequence("MUM", DefaultPadWidth); err == nil {
		t.Error("expected error for short number")
	}

	if _, err := TrailingSequence("MUM24RMABCDEF", DefaultPadWidth); err == nil {
		t.Error("expected error for non-numeric suffix")
	}
}

func TestPrefixFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Mumbai Central", "MC"},
		{"Bandra", "BNDR"},
		{"Juhu Beach Outlet", "JBO"},
		{"Pune Camp Road Kitchen Two", "PCRK"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := PrefixFromName(tt.name); got != tt.expected {
			t.Errorf("PrefixFromName(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestMockGenerator_CountsPerScope(t *testing.T) {
	gen := &MockGenerator{}
	ctx := context.Background()
	date := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	mum := NewConfig("MUM", "RM")
	pun := NewConfig("PUN", "RM")

	first, err := gen.Next(ctx, mum, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "MUM24RM000001" {
		t.Errorf("expected MUM24RM000001, got %s", first)
	}

	second, _ := gen.Next(ctx, mum, date)
	if second != "MUM24RM000002" {
		t.Errorf("expected MUM24RM000002, got %s", second)
	}

	// Independent scope starts its own series.
	other, _ := gen.Next(ctx, pun, date)
	if other != "PUN24RM000001" {
		t.Errorf("expected PUN24RM000001, got %s", other)
	}
}
