package purchase

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

func testPurchase() *Purchase {
	p := NewPurchase(id.New(), id.New(), id.New())
	p.Date = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	return p
}

func TestPurchase_AddLine_Totals(t *testing.T) {
	p := testPurchase()

	// 25.5 kg at 42.00 with 5% tax: amount 1071.00, tax 53.55
	p.AddLine(id.New(), types.NewQuantityFromFloat64(25.5), types.NewMoney(42), types.NewMoney(5))
	// 10 units at 13.33 with no tax: amount 133.30
	p.AddLine(id.New(), types.NewQuantityFromFloat64(10), types.MustMoney("13.33"), types.Zero())

	if !p.TotalAmount.Equal(types.MustMoney("1204.30")) {
		t.Errorf("total amount = %s, want 1204.30", p.TotalAmount)
	}
	if !p.TotalTax.Equal(types.MustMoney("53.55")) {
		t.Errorf("total tax = %s, want 53.55", p.TotalTax)
	}
	if !p.GrandTotal.Equal(types.MustMoney("1257.85")) {
		t.Errorf("grand total = %s, want 1257.85", p.GrandTotal)
	}

	if p.Lines[0].LineNo != 1 || p.Lines[1].LineNo != 2 {
		t.Error("line numbers should be sequential")
	}
}

func TestPurchase_AddLine_TaxRounding(t *testing.T) {
	p := testPurchase()

	// 3 units at 33.33 with 18% tax: amount 99.99, tax 17.9982 rounds to 18.00
	p.AddLine(id.New(), types.NewQuantityFromFloat64(3), types.MustMoney("33.33"), types.NewMoney(18))

	line := p.Lines[0]
	if !line.Amount.Equal(types.MustMoney("99.99")) {
		t.Errorf("amount = %s, want 99.99", line.Amount)
	}
	if !line.TaxAmount.Equal(types.MustMoney("18.00")) {
		t.Errorf("tax = %s, want 18.00", line.TaxAmount)
	}
	if !line.Total.Equal(types.MustMoney("117.99")) {
		t.Errorf("total = %s, want 117.99", line.Total)
	}
}

func TestPurchase_Validate(t *testing.T) {
	ctx := context.Background()

	p := testPurchase()
	p.AddLine(id.New(), types.NewQuantityFromFloat64(1), types.NewMoney(10), types.Zero())
	if err := p.Validate(ctx); err != nil {
		t.Errorf("valid purchase should pass: %v", err)
	}

	noLines := testPurchase()
	if err := noLines.Validate(ctx); err == nil {
		t.Error("expected error for purchase without lines")
	}

	noLocation := testPurchase()
	noLocation.LocationID = id.Nil()
	noLocation.AddLine(id.New(), types.NewQuantityFromFloat64(1), types.NewMoney(10), types.Zero())
	if err := noLocation.Validate(ctx); err == nil {
		t.Error("expected error for missing location")
	}

	badQty := testPurchase()
	badQty.AddLine(id.New(), 0, types.NewMoney(10), types.Zero())
	if err := badQty.Validate(ctx); err == nil {
		t.Error("expected error for zero quantity")
	}

	// Tax charged but no tax account configured.
	taxed := testPurchase()
	taxed.AddLine(id.New(), types.NewQuantityFromFloat64(1), types.NewMoney(100), types.NewMoney(5))
	if err := taxed.Validate(ctx); err == nil {
		t.Error("expected error when tax is charged without a tax account")
	}
	taxAcc := id.New()
	taxed.TaxAccountID = &taxAcc
	if err := taxed.Validate(ctx); err != nil {
		t.Errorf("taxed purchase with tax account should pass: %v", err)
	}
}

func TestPurchase_StockMovements(t *testing.T) {
	p := testPurchase()
	p.Number = "MUM24PU000001"
	itemID := id.New()
	p.AddLine(itemID, types.NewQuantityFromFloat64(12.5), types.NewMoney(40), types.NewMoney(5))

	movements, err := p.StockMovements(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}

	m := movements[0]
	if m.ItemID != itemID {
		t.Error("movement should carry the line item")
	}
	if m.LocationID != p.LocationID {
		t.Error("movement should carry the document location")
	}
	if !m.IsInbound() {
		t.Error("purchase movements are inbound")
	}
	if m.Quantity != types.NewQuantityFromFloat64(12.5) {
		t.Errorf("quantity = %s, want 12.5", m.Quantity)
	}
	// Valuation rate excludes tax.
	if m.NetRate == nil || !m.NetRate.Equal(types.NewMoney(40)) {
		t.Errorf("net rate should be the tax-free rate, got %v", m.NetRate)
	}
}

func TestPurchase_LedgerPosting(t *testing.T) {
	p := testPurchase()
	p.Number = "MUM24PU000001"
	taxAcc := id.New()
	p.TaxAccountID = &taxAcc
	p.AddLine(id.New(), types.NewQuantityFromFloat64(10), types.NewMoney(100), types.NewMoney(5))

	post, err := p.LedgerPosting(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := post.Validate(context.Background()); err != nil {
		t.Errorf("purchase posting should be balanced by construction: %v", err)
	}
	if len(post.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(post.Entries))
	}

	debit, credit := post.Totals()
	if !debit.Equal(types.MustMoney("1050")) || !credit.Equal(types.MustMoney("1050")) {
		t.Errorf("totals = %s/%s, want 1050/1050", debit, credit)
	}
	// Supplier is credited the gross total.
	supplier := post.Entries[2]
	if supplier.AccountID != p.SupplierAccountID || !supplier.Credit.Equal(p.GrandTotal) {
		t.Error("supplier entry should credit the gross total")
	}
}

func TestPurchase_LedgerPosting_NoTax(t *testing.T) {
	p := testPurchase()
	p.Number = "MUM24PU000002"
	p.AddLine(id.New(), types.NewQuantityFromFloat64(2), types.NewMoney(50), types.Zero())

	post, err := p.LedgerPosting(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(post.Entries) != 2 {
		t.Fatalf("tax-free purchase posts 2 entries, got %d", len(post.Entries))
	}
	if err := post.Validate(context.Background()); err != nil {
		t.Errorf("posting should validate: %v", err)
	}
}
