package stock

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

type mockStockRepo struct {
	Repository

	created [][]entity.StockMovement
	deleted []string
}

func (m *mockStockRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	m.created = append(m.created, movements)
	return nil
}

func (m *mockStockRepo) DeleteByTransactionNo(ctx context.Context, transactionNo string) error {
	m.deleted = append(m.deleted, transactionNo)
	return nil
}

func testMovement() entity.StockMovement {
	return entity.NewStockMovement(
		id.New(), id.New(),
		entity.MovementPurchase,
		10_000, nil,
		"MUM24PU000001",
		time.Now().UTC(),
	)
}

func TestService_RecordMovements(t *testing.T) {
	repo := &mockStockRepo{}
	svc := NewService(repo)

	if err := svc.RecordMovements(context.Background(), []entity.StockMovement{testMovement()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected 1 batch, got %d", len(repo.created))
	}
}

func TestService_RecordMovements_Empty(t *testing.T) {
	repo := &mockStockRepo{}
	svc := NewService(repo)

	if err := svc.RecordMovements(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("empty set should not hit the repository")
	}
}

func TestService_RecordMovements_Invalid(t *testing.T) {
	repo := &mockStockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	zeroQty := testMovement()
	zeroQty.Quantity = 0
	if err := svc.RecordMovements(ctx, []entity.StockMovement{zeroQty}); err == nil {
		t.Error("expected error for zero quantity")
	}

	noNumber := testMovement()
	noNumber.TransactionNo = ""
	if err := svc.RecordMovements(ctx, []entity.StockMovement{noNumber}); err == nil {
		t.Error("expected error for missing transaction number")
	}

	noItem := testMovement()
	noItem.ItemID = id.Nil()
	if err := svc.RecordMovements(ctx, []entity.StockMovement{noItem}); err == nil {
		t.Error("expected error for missing item")
	}

	if len(repo.created) != 0 {
		t.Error("invalid movements must not reach the repository")
	}
}

func TestService_RemoveByTransactionNo_Blank(t *testing.T) {
	repo := &mockStockRepo{}
	svc := NewService(repo)

	if err := svc.RemoveByTransactionNo(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("blank number should be a no-op")
	}
}

func TestAdjustmentDelta(t *testing.T) {
	tests := []struct {
		name            string
		target, closing int64
		expected        int64
	}{
		{"shortfall writes inbound", 100_000, 80_000, 20_000},
		{"surplus writes outbound", 50_000, 80_000, -30_000},
		{"match writes nothing", 80_000, 80_000, 0},
		{"negative closing", 50_000, -10_000, 60_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustmentDelta(types.Quantity(tt.target), types.Quantity(tt.closing))
			if int64(got) != tt.expected {
				t.Errorf("AdjustmentDelta(%d, %d) = %d, want %d", tt.target, tt.closing, got, tt.expected)
			}
		})
	}
}
