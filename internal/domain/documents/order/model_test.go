package order

import (
	"context"
	"testing"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

func testOrder() *Order {
	o := NewOrder(id.New(), id.New())
	o.AddLine(id.New(), types.NewQuantityFromFloat64(2), types.NewMoney(75))
	return o
}

func TestOrder_AddLine_Total(t *testing.T) {
	o := testOrder()
	o.AddLine(id.New(), types.NewQuantityFromFloat64(1.5), types.NewMoney(40))

	if !o.TotalAmount.Equal(types.MustMoney("210")) {
		t.Errorf("total = %s, want 210", o.TotalAmount)
	}
}

func TestOrder_Lifecycle(t *testing.T) {
	o := testOrder()
	if o.Status != StatusPending {
		t.Fatalf("new order should be pending, got %s", o.Status)
	}

	if err := o.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if o.Status != StatusConfirmed {
		t.Errorf("status = %s, want confirmed", o.Status)
	}

	if err := o.Fulfill("MUM24SL000011"); err != nil {
		t.Fatalf("fulfill: %v", err)
	}
	if o.Status != StatusFulfilled {
		t.Errorf("status = %s, want fulfilled", o.Status)
	}
	if o.FulfilledByNo != "MUM24SL000011" {
		t.Errorf("fulfilled by = %q, want the sale number", o.FulfilledByNo)
	}
}

func TestOrder_InvalidTransitions(t *testing.T) {
	o := testOrder()

	// Cannot fulfill before confirmation.
	if err := o.Fulfill("MUM24SL000001"); err == nil {
		t.Error("expected error fulfilling a pending order")
	}

	// Cannot confirm twice.
	if err := o.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := o.Confirm(); err == nil {
		t.Error("expected error confirming a confirmed order")
	}

	// A fulfilled order is closed.
	if err := o.Fulfill("MUM24SL000001"); err != nil {
		t.Fatalf("fulfill: %v", err)
	}
	if err := o.Cancel(); err == nil {
		t.Error("expected error cancelling a fulfilled order")
	}
}

func TestOrder_Cancel(t *testing.T) {
	pending := testOrder()
	if err := pending.Cancel(); err != nil {
		t.Errorf("pending order should cancel: %v", err)
	}
	if pending.Status != StatusCancelled {
		t.Errorf("status = %s, want cancelled", pending.Status)
	}

	confirmed := testOrder()
	_ = confirmed.Confirm()
	if err := confirmed.Cancel(); err != nil {
		t.Errorf("confirmed order should cancel: %v", err)
	}

	// Cancelled is terminal.
	if err := confirmed.Confirm(); err == nil {
		t.Error("expected error confirming a cancelled order")
	}
}

func TestOrder_Validate(t *testing.T) {
	ctx := context.Background()

	o := testOrder()
	if err := o.Validate(ctx); err != nil {
		t.Errorf("valid order should pass: %v", err)
	}

	noLines := NewOrder(id.New(), id.New())
	if err := noLines.Validate(ctx); err == nil {
		t.Error("expected error for order without lines")
	}

	badStatus := testOrder()
	badStatus.Status = Status("shipped")
	if err := badStatus.Validate(ctx); err == nil {
		t.Error("expected error for unknown status")
	}
}
