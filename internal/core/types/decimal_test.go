package types

import (
	"encoding/json"
	"testing"
)

func TestNewQuantityFromFloat64(t *testing.T) {
	tests := []struct {
		in       float64
		expected Quantity
	}{
		{1.5, 15_000},
		{0.0001, 1},
		{-2.25, -22_500},
		{0, 0},
		{1.00005, 10_001}, // rounds half away from zero
	}

	for _, tt := range tests {
		if got := NewQuantityFromFloat64(tt.in); got != tt.expected {
			t.Errorf("NewQuantityFromFloat64(%v) = %d, want %d", tt.in, got, tt.expected)
		}
	}
}

func TestQuantity_String(t *testing.T) {
	tests := []struct {
		q        Quantity
		expected string
	}{
		{15_000, "1.5000"},
		{1, "0.0001"},
		{-22_500, "-2.2500"},
		{0, "0.0000"},
		{123_456_789, "12345.6789"},
	}

	for _, tt := range tests {
		if got := tt.q.String(); got != tt.expected {
			t.Errorf("Quantity(%d).String() = %q, want %q", tt.q, got, tt.expected)
		}
	}
}

func TestQuantity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in       string
		expected Quantity
	}{
		{`1.5`, 15_000},
		{`"1.5"`, 15_000},
		{`-2.25`, -22_500},
		{`100`, 1_000_000},
		{`0.00015`, 1}, // extra digits truncated
		{`null`, 0},
	}

	for _, tt := range tests {
		var q Quantity
		if err := json.Unmarshal([]byte(tt.in), &q); err != nil {
			t.Errorf("Unmarshal(%s): unexpected error: %v", tt.in, err)
			continue
		}
		if q != tt.expected {
			t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, q, tt.expected)
		}
	}

	var q Quantity
	if err := json.Unmarshal([]byte(`"abc"`), &q); err == nil {
		t.Error("expected error for non-numeric quantity")
	}
}

func TestQuantity_MarshalJSON(t *testing.T) {
	type payload struct {
		Qty Quantity `json:"qty"`
	}

	data, err := json.Marshal(payload{Qty: 15_000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"qty":1.5000}` {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestQuantity_Decimal(t *testing.T) {
	q := Quantity(15_000)
	if got := q.Decimal().String(); got != "1.5" {
		t.Errorf("Decimal() = %s, want 1.5", got)
	}
}

func TestQuantity_AbsNeg(t *testing.T) {
	q := Quantity(-5_000)
	if q.Abs() != 5_000 {
		t.Errorf("Abs() = %d, want 5000", q.Abs())
	}
	if q.Neg() != 5_000 {
		t.Errorf("Neg() = %d, want 5000", q.Neg())
	}
	if !q.IsNegative() || q.IsPositive() || q.IsZero() {
		t.Error("sign predicates wrong for -0.5")
	}
}
