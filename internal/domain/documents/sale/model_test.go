package sale

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

func testSale() *Sale {
	s := NewSale(id.New(), id.New(), id.New())
	s.Date = time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)
	return s
}

func TestSale_StockMovements_Outbound(t *testing.T) {
	s := testSale()
	s.Number = "MUM24SL000001"
	s.AddLine(id.New(), types.NewQuantityFromFloat64(3), types.NewMoney(60), types.Zero())

	movements, err := s.StockMovements(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}

	m := movements[0]
	if m.IsInbound() {
		t.Error("sale movements are outbound")
	}
	if m.Quantity != types.NewQuantityFromFloat64(-3) {
		t.Errorf("quantity = %s, want -3", m.Quantity)
	}
	// Sales never carry a valuation rate.
	if m.NetRate != nil {
		t.Error("sale movements are unrated")
	}
}

func TestSaleReturn_StockMovements_Inbound(t *testing.T) {
	s := NewSaleReturn(id.New(), id.New(), id.New(), "MUM24SL000001")
	s.Date = time.Date(2024, time.July, 6, 0, 0, 0, 0, time.UTC)
	s.Number = "MUM24SR000001"
	s.AddLine(id.New(), types.NewQuantityFromFloat64(3), types.NewMoney(60), types.Zero())

	movements, err := s.StockMovements(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := movements[0]
	if !m.IsInbound() {
		t.Error("return movements bring stock back in")
	}
	if m.Quantity != types.NewQuantityFromFloat64(3) {
		t.Errorf("quantity = %s, want 3", m.Quantity)
	}
	if m.NetRate != nil {
		t.Error("return movements are unrated")
	}
}

func TestSale_LedgerPosting(t *testing.T) {
	s := testSale()
	s.Number = "MUM24SL000002"
	taxAcc := id.New()
	s.TaxAccountID = &taxAcc
	s.AddLine(id.New(), types.NewQuantityFromFloat64(10), types.NewMoney(50), types.NewMoney(5))

	post, err := s.LedgerPosting(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := post.Validate(context.Background()); err != nil {
		t.Errorf("sale posting should be balanced: %v", err)
	}

	// Customer debited gross; income and tax credited.
	customer := post.Entries[0]
	if customer.AccountID != s.CustomerAccountID || !customer.Debit.Equal(types.MustMoney("525")) {
		t.Errorf("customer should be debited 525, got %s", customer.Debit)
	}
	income := post.Entries[1]
	if income.AccountID != s.SaleAccountID || !income.Credit.Equal(types.MustMoney("500")) {
		t.Errorf("income should be credited 500, got %s", income.Credit)
	}
}

func TestSaleReturn_LedgerPosting_Mirrored(t *testing.T) {
	ret := NewSaleReturn(id.New(), id.New(), id.New(), "MUM24SL000002")
	ret.Date = time.Date(2024, time.July, 7, 0, 0, 0, 0, time.UTC)
	ret.Number = "MUM24SR000002"
	taxAcc := id.New()
	ret.TaxAccountID = &taxAcc
	ret.AddLine(id.New(), types.NewQuantityFromFloat64(10), types.NewMoney(50), types.NewMoney(5))

	post, err := ret.LedgerPosting(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := post.Validate(context.Background()); err != nil {
		t.Errorf("return posting should be balanced: %v", err)
	}

	// The mirror of the sale: income debited, customer credited gross.
	income := post.Entries[0]
	if income.AccountID != ret.SaleAccountID || !income.Debit.Equal(types.MustMoney("500")) {
		t.Errorf("income should be debited 500, got %s", income.Debit)
	}
	customer := post.Entries[2]
	if customer.AccountID != ret.CustomerAccountID || !customer.Credit.Equal(types.MustMoney("525")) {
		t.Errorf("customer should be credited 525, got %s", customer.Credit)
	}
}

func TestSale_Validate_ReturnRequiresReference(t *testing.T) {
	ret := NewSaleReturn(id.New(), id.New(), id.New(), "")
	ret.Date = time.Now().UTC()
	ret.AddLine(id.New(), types.NewQuantityFromFloat64(1), types.NewMoney(10), types.Zero())

	if err := ret.Validate(context.Background()); err == nil {
		t.Error("expected error for return without original sale number")
	}

	ret.ReturnAgainstNo = "MUM24SL000009"
	if err := ret.Validate(context.Background()); err != nil {
		t.Errorf("referenced return should pass: %v", err)
	}
}

func TestSale_DocumentType(t *testing.T) {
	s := testSale()
	if s.DocumentType() != DocumentType {
		t.Errorf("unexpected document type %q", s.DocumentType())
	}

	ret := NewSaleReturn(id.New(), id.New(), id.New(), "MUM24SL000001")
	if ret.DocumentType() != ReturnDocumentType {
		t.Errorf("unexpected return document type %q", ret.DocumentType())
	}
}
