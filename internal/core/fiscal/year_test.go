package fiscal

import (
	"testing"
	"time"

	"bakehouse/internal/core/apperror"
)

func TestStartYear(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected int
	}{
		{time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), 2025},
	}

	for _, tt := range tests {
		if got := StartYear(tt.date); got != tt.expected {
			t.Errorf("StartYear(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.expected)
		}
	}
}

func TestSuffix(t *testing.T) {
	feb := time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)
	if got := Suffix(feb); got != 24 {
		t.Errorf("Suffix(feb 2025) = %d, want 24", got)
	}
}

func TestBounds(t *testing.T) {
	start, end := Bounds(2024)

	if !start.Equal(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %s", start)
	}
	if !end.Equal(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end: %s", end)
	}
}

func TestFinancialYear_Contains(t *testing.T) {
	fy := NewFinancialYear(2024)

	inside := []time.Time{
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC),
	}
	for _, d := range inside {
		if !fy.Contains(d) {
			t.Errorf("expected %s inside FY2024", d.Format(time.RFC3339))
		}
	}

	outside := []time.Time{
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range outside {
		if fy.Contains(d) {
			t.Errorf("expected %s outside FY2024", d.Format(time.RFC3339))
		}
	}
}

func TestFinancialYear_CheckOpen(t *testing.T) {
	fy := NewFinancialYear(2024)
	if err := fy.CheckOpen(); err != nil {
		t.Errorf("new year should be open: %v", err)
	}

	fy.Locked = true
	err := fy.CheckOpen()
	if err == nil {
		t.Fatal("expected error for locked year")
	}
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeFiscalYearLocked {
		t.Errorf("expected fiscal year locked error, got %v", err)
	}

	fy.Locked = false
	fy.Active = false
	if err := fy.CheckOpen(); err == nil {
		t.Error("expected error for inactive year")
	}
}
