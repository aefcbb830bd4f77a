package kitchenissue

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

func TestKitchenIssue_StockMovements(t *testing.T) {
	k := NewKitchenIssue(id.New())
	k.Date = time.Date(2024, time.May, 21, 0, 0, 0, 0, time.UTC)
	k.Number = "MUM24RM000003"
	k.AddLine(id.New(), types.NewQuantityFromFloat64(6.25))

	movements, err := k.StockMovements(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}

	m := movements[0]
	if m.MovementType != entity.MovementKitchenIssue {
		t.Errorf("movement type = %s, want kitchen_issue", m.MovementType)
	}
	if m.IsInbound() {
		t.Error("issues move raw material out")
	}
	if m.Quantity != types.NewQuantityFromFloat64(-6.25) {
		t.Errorf("quantity = %s, want -6.25", m.Quantity)
	}
	if m.NetRate != nil {
		t.Error("issue movements are unrated")
	}
}

func TestKitchenIssue_Validate(t *testing.T) {
	ctx := context.Background()

	k := NewKitchenIssue(id.New())
	k.AddLine(id.New(), types.NewQuantityFromFloat64(1))
	if err := k.Validate(ctx); err != nil {
		t.Errorf("valid issue should pass: %v", err)
	}

	noLocation := NewKitchenIssue(id.Nil())
	noLocation.AddLine(id.New(), types.NewQuantityFromFloat64(1))
	if err := noLocation.Validate(ctx); err == nil {
		t.Error("expected error for missing location")
	}

	zeroQty := NewKitchenIssue(id.New())
	zeroQty.AddLine(id.New(), 0)
	if err := zeroQty.Validate(ctx); err == nil {
		t.Error("expected error for zero quantity")
	}
}
