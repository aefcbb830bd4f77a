package adjustment

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/registers/stock"
)

// balanceRepo serves fixed closing balances per item.
type balanceRepo struct {
	stock.Repository

	balances map[id.ID]types.Quantity
}

func (r *balanceRepo) Summarize(ctx context.Context, filter stock.SummaryFilter) (stock.Summary, error) {
	return stock.Summary{
		ItemID:     filter.ItemID,
		LocationID: filter.LocationID,
		Closing:    r.balances[filter.ItemID],
	}, nil
}

func TestStockAdjustment_PrepareStock(t *testing.T) {
	short := id.New()   // counted below book
	surplus := id.New() // counted above book
	exact := id.New()   // matches book

	register := stock.NewService(&balanceRepo{balances: map[id.ID]types.Quantity{
		short:   types.NewQuantityFromFloat64(10),
		surplus: types.NewQuantityFromFloat64(4),
		exact:   types.NewQuantityFromFloat64(7),
	}})

	adj := NewStockAdjustment(id.New())
	adj.Date = time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	adj.AddLine(short, types.NewQuantityFromFloat64(8))
	adj.AddLine(surplus, types.NewQuantityFromFloat64(6))
	adj.AddLine(exact, types.NewQuantityFromFloat64(7))

	if err := adj.PrepareStock(context.Background(), register); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if adj.Lines[0].Delta != types.NewQuantityFromFloat64(-2) {
		t.Errorf("short delta = %s, want -2", adj.Lines[0].Delta)
	}
	if adj.Lines[1].Delta != types.NewQuantityFromFloat64(2) {
		t.Errorf("surplus delta = %s, want 2", adj.Lines[1].Delta)
	}
	if !adj.Lines[2].Delta.IsZero() {
		t.Errorf("exact delta = %s, want 0", adj.Lines[2].Delta)
	}
}

func TestStockAdjustment_StockMovements_SkipsZeroDeltas(t *testing.T) {
	adj := NewStockAdjustment(id.New())
	adj.Number = "MUM24SA000001"
	adj.AddLine(id.New(), types.NewQuantityFromFloat64(5))
	adj.AddLine(id.New(), types.NewQuantityFromFloat64(3))
	adj.Lines[0].Delta = types.NewQuantityFromFloat64(-1)
	adj.Lines[1].Delta = 0

	movements, err := adj.StockMovements(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}

	m := movements[0]
	if m.MovementType != entity.MovementAdjustment {
		t.Errorf("movement type = %s, want adjustment", m.MovementType)
	}
	if m.Quantity != types.NewQuantityFromFloat64(-1) {
		t.Errorf("quantity = %s, want -1", m.Quantity)
	}
	if m.NetRate != nil {
		t.Error("adjustment movements are unrated")
	}
}

func TestStockAdjustment_Validate(t *testing.T) {
	ctx := context.Background()

	adj := NewStockAdjustment(id.New())
	adj.AddLine(id.New(), types.NewQuantityFromFloat64(5))
	if err := adj.Validate(ctx); err != nil {
		t.Errorf("valid adjustment should pass: %v", err)
	}

	// A target of zero is a legal count (item is gone).
	zeroed := NewStockAdjustment(id.New())
	zeroed.AddLine(id.New(), 0)
	if err := zeroed.Validate(ctx); err != nil {
		t.Errorf("zero target should pass: %v", err)
	}

	negative := NewStockAdjustment(id.New())
	negative.AddLine(id.New(), types.NewQuantityFromFloat64(-1))
	if err := negative.Validate(ctx); err == nil {
		t.Error("expected error for negative target")
	}

	duplicated := NewStockAdjustment(id.New())
	itemID := id.New()
	duplicated.AddLine(itemID, types.NewQuantityFromFloat64(1))
	duplicated.AddLine(itemID, types.NewQuantityFromFloat64(2))
	if err := duplicated.Validate(ctx); err == nil {
		t.Error("expected error for an item counted twice")
	}
}
