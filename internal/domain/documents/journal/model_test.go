package journal

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

func testVoucher() *JournalVoucher {
	j := NewJournalVoucher(id.New())
	j.Date = time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	return j
}

func TestJournalVoucher_Validate(t *testing.T) {
	ctx := context.Background()

	j := testVoucher()
	j.AddDebit(id.New(), types.NewMoney(300), "rent")
	j.AddCredit(id.New(), types.NewMoney(300), "cash")
	if err := j.Validate(ctx); err != nil {
		t.Errorf("balanced voucher should pass: %v", err)
	}

	unbalanced := testVoucher()
	unbalanced.AddDebit(id.New(), types.NewMoney(300), "")
	unbalanced.AddCredit(id.New(), types.NewMoney(200), "")
	if err := unbalanced.Validate(ctx); err == nil {
		t.Error("expected error for unbalanced voucher")
	}

	noType := testVoucher()
	noType.VoucherTypeID = id.Nil()
	noType.AddDebit(id.New(), types.NewMoney(100), "")
	noType.AddCredit(id.New(), types.NewMoney(100), "")
	if err := noType.Validate(ctx); err == nil {
		t.Error("expected error for missing voucher type")
	}

	single := testVoucher()
	single.AddDebit(id.New(), types.NewMoney(100), "")
	if err := single.Validate(ctx); err == nil {
		t.Error("expected error for single-entry voucher")
	}
}

func TestJournalVoucher_LedgerPosting(t *testing.T) {
	j := testVoucher()
	j.Number = "MUM24JV000001"
	rent := id.New()
	cash := id.New()
	j.AddDebit(rent, types.NewMoney(300), "rent")
	j.AddCredit(cash, types.NewMoney(300), "cash")

	post, err := j.LedgerPosting(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if post.VoucherTypeID == nil || *post.VoucherTypeID != j.VoucherTypeID {
		t.Error("posting should carry the voucher type")
	}
	if post.ReferenceID != j.ID {
		t.Error("posting should reference the voucher")
	}
	if len(post.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(post.Entries))
	}
	if post.Entries[0].AccountID != rent || !post.Entries[0].Debit.Equal(types.NewMoney(300)) {
		t.Error("first entry should debit rent 300")
	}
	if post.Entries[1].AccountID != cash || !post.Entries[1].Credit.Equal(types.NewMoney(300)) {
		t.Error("second entry should credit cash 300")
	}
}
