package ledger

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

func testPosting() *Posting {
	return NewPosting(RefPurchase, id.New(), "MUM24PU000001", time.Now().UTC())
}

func TestPosting_Validate_Balanced(t *testing.T) {
	p := testPosting()
	p.Debit(id.New(), types.NewMoney(1000), "purchase")
	p.Debit(id.New(), types.NewMoney(50), "purchase tax")
	p.Credit(id.New(), types.NewMoney(1050), "supplier payable")

	if err := p.Validate(context.Background()); err != nil {
		t.Errorf("balanced posting should validate: %v", err)
	}
}

func TestPosting_Validate_Unbalanced(t *testing.T) {
	p := testPosting()
	p.Debit(id.New(), types.NewMoney(1000), "")
	p.Credit(id.New(), types.NewMoney(999), "")

	if err := p.Validate(context.Background()); err == nil {
		t.Error("expected error for unbalanced posting")
	}
}

func TestPosting_Validate_TooFewEntries(t *testing.T) {
	p := testPosting()
	p.Debit(id.New(), types.NewMoney(100), "")

	if err := p.Validate(context.Background()); err == nil {
		t.Error("expected error for single-entry posting")
	}
}

func TestPosting_Validate_BothSidesSet(t *testing.T) {
	p := testPosting()
	p.AddEntry(id.New(), types.NewMoney(100), types.NewMoney(100), "")
	p.Credit(id.New(), types.NewMoney(100), "")

	if err := p.Validate(context.Background()); err == nil {
		t.Error("expected error when an entry carries both debit and credit")
	}
}

func TestPosting_Validate_NeitherSideSet(t *testing.T) {
	p := testPosting()
	p.Debit(id.New(), types.NewMoney(100), "")
	p.AddEntry(id.New(), types.Zero(), types.Zero(), "")
	p.Credit(id.New(), types.NewMoney(100), "")

	if err := p.Validate(context.Background()); err == nil {
		t.Error("expected error for empty entry")
	}
}

func TestPosting_Validate_NegativeAmount(t *testing.T) {
	p := testPosting()
	p.Debit(id.New(), types.NewMoney(-100), "")
	p.Credit(id.New(), types.NewMoney(-100), "")

	if err := p.Validate(context.Background()); err == nil {
		t.Error("expected error for negative amounts")
	}
}

func TestPosting_Totals(t *testing.T) {
	p := testPosting()
	p.Debit(id.New(), types.NewMoney(600), "")
	p.Debit(id.New(), types.NewMoney(400), "")
	p.Credit(id.New(), types.NewMoney(1000), "")

	debit, credit := p.Totals()
	if !debit.Equal(types.NewMoney(1000)) {
		t.Errorf("expected debit total 1000, got %s", debit)
	}
	if !credit.Equal(types.NewMoney(1000)) {
		t.Errorf("expected credit total 1000, got %s", credit)
	}
}
