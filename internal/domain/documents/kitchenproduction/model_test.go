package kitchenproduction

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

func TestKitchenProduction_StockMovements(t *testing.T) {
	k := NewKitchenProduction(id.New())
	k.Date = time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	k.Number = "MUM24KP000001"
	itemID := id.New()
	k.AddLine(itemID, types.NewQuantityFromFloat64(40), types.MustMoney("12.50"))

	movements, err := k.StockMovements(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}

	m := movements[0]
	if m.MovementType != entity.MovementKitchenProduction {
		t.Errorf("movement type = %s, want kitchen_production", m.MovementType)
	}
	if !m.IsInbound() {
		t.Error("production output is inbound")
	}
	// Production receipts are rated at cost for valuation.
	if m.NetRate == nil || !m.NetRate.Equal(types.MustMoney("12.50")) {
		t.Errorf("net rate should be the cost rate, got %v", m.NetRate)
	}
}

func TestKitchenProduction_Validate(t *testing.T) {
	ctx := context.Background()

	k := NewKitchenProduction(id.New())
	k.AddLine(id.New(), types.NewQuantityFromFloat64(10), types.NewMoney(8))
	if err := k.Validate(ctx); err != nil {
		t.Errorf("valid production should pass: %v", err)
	}

	noLines := NewKitchenProduction(id.New())
	if err := noLines.Validate(ctx); err == nil {
		t.Error("expected error for production without lines")
	}

	badRate := NewKitchenProduction(id.New())
	badRate.AddLine(id.New(), types.NewQuantityFromFloat64(10), types.NewMoney(-1))
	if err := badRate.Validate(ctx); err == nil {
		t.Error("expected error for negative cost rate")
	}
}
