package ledger

import (
	"context"
	"testing"
	"time"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/fiscal"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
)

type mockLedgerRepo struct {
	Repository

	active      *Posting
	created     []*Posting
	deactivated []id.ID
}

func (m *mockLedgerRepo) CreatePosting(ctx context.Context, posting *Posting) error {
	m.created = append(m.created, posting)
	return nil
}

func (m *mockLedgerRepo) FindActiveByReference(ctx context.Context, refID id.ID) (*Posting, error) {
	return m.active, nil
}

func (m *mockLedgerRepo) DeactivateByReference(ctx context.Context, refID id.ID) (*Posting, error) {
	m.deactivated = append(m.deactivated, refID)
	prev := m.active
	m.active = nil
	return prev, nil
}

// mockResolver keys years by fiscal start year so a test can lock one
// period while leaving another open.
type mockResolver struct {
	years map[int]fiscal.FinancialYear
}

func (m *mockResolver) ByDate(ctx context.Context, date time.Time) (fiscal.FinancialYear, error) {
	year, ok := m.years[fiscal.StartYear(date)]
	if !ok {
		return fiscal.FinancialYear{}, apperror.NewNotFound("financial year", date.Format("2006-01-02"))
	}
	return year, nil
}

func openResolver(yearNos ...int) *mockResolver {
	years := make(map[int]fiscal.FinancialYear, len(yearNos))
	for _, no := range yearNos {
		years[no] = fiscal.NewFinancialYear(no)
	}
	return &mockResolver{years: years}
}

func balancedPosting(date time.Time) *Posting {
	p := NewPosting(RefPurchase, id.New(), "MUM24PU000001", date)
	p.Debit(id.New(), types.NewMoney(500), "")
	p.Credit(id.New(), types.NewMoney(500), "")
	return p
}

func TestService_Repost_New(t *testing.T) {
	repo := &mockLedgerRepo{}
	svc := NewService(repo, openResolver(2024))

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	posting := balancedPosting(date)

	if err := svc.Repost(context.Background(), posting); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created posting, got %d", len(repo.created))
	}
	if id.IsNil(repo.created[0].FiscalYearID) {
		t.Error("posting should carry the resolved fiscal year")
	}
	if len(repo.deactivated) != 0 {
		t.Error("no previous posting to deactivate")
	}
}

func TestService_Repost_ReplacesPrevious(t *testing.T) {
	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	previous := balancedPosting(date)

	repo := &mockLedgerRepo{active: previous}
	svc := NewService(repo, openResolver(2024))

	next := balancedPosting(date.AddDate(0, 1, 0))
	next.ReferenceID = previous.ReferenceID

	if err := svc.Repost(context.Background(), next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deactivated) != 1 {
		t.Errorf("expected previous posting deactivated, got %d", len(repo.deactivated))
	}
	if len(repo.created) != 1 {
		t.Errorf("expected 1 created posting, got %d", len(repo.created))
	}
}

func TestService_Repost_LockedYear(t *testing.T) {
	resolver := openResolver(2024)
	locked := resolver.years[2024]
	locked.Locked = true
	resolver.years[2024] = locked

	repo := &mockLedgerRepo{}
	svc := NewService(repo, resolver)

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	err := svc.Repost(context.Background(), balancedPosting(date))
	if err == nil {
		t.Fatal("expected error for locked year")
	}
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeFiscalYearLocked {
		t.Errorf("expected fiscal year locked error, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("locked year must not accept postings")
	}
}

// A document first posted into a year that has since been locked cannot be
// reposted, even when its new date falls in an open year.
func TestService_Repost_RetroactiveEditOfLockedYear(t *testing.T) {
	resolver := openResolver(2024, 2025)
	locked := resolver.years[2024]
	locked.Locked = true
	resolver.years[2024] = locked

	oldDate := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	previous := balancedPosting(oldDate)

	repo := &mockLedgerRepo{active: previous}
	svc := NewService(repo, resolver)

	next := balancedPosting(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	next.ReferenceID = previous.ReferenceID

	err := svc.Repost(context.Background(), next)
	if err == nil {
		t.Fatal("expected error when prior posting sits in a locked year")
	}
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeFiscalYearLocked {
		t.Errorf("expected fiscal year locked error, got %v", err)
	}
	if len(repo.deactivated) != 0 {
		t.Error("previous posting must stay active")
	}
}

func TestService_Repost_Unbalanced(t *testing.T) {
	repo := &mockLedgerRepo{}
	svc := NewService(repo, openResolver(2024))

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	p := NewPosting(RefJournalVoucher, id.New(), "MUM24JV000001", date)
	p.Debit(id.New(), types.NewMoney(100), "")
	p.Credit(id.New(), types.NewMoney(90), "")

	if err := svc.Repost(context.Background(), p); err == nil {
		t.Fatal("expected validation error")
	}
	if len(repo.created) != 0 {
		t.Error("invalid posting must not reach the repository")
	}
}

func TestService_Remove_LockedYear(t *testing.T) {
	resolver := openResolver(2024)
	locked := resolver.years[2024]
	locked.Locked = true
	resolver.years[2024] = locked

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	previous := balancedPosting(date)

	repo := &mockLedgerRepo{active: previous}
	svc := NewService(repo, resolver)

	if err := svc.Remove(context.Background(), previous.ReferenceID); err == nil {
		t.Fatal("expected error removing posting from locked year")
	}
	if len(repo.deactivated) != 0 {
		t.Error("posting must stay active")
	}
}

func TestService_Remove_NoPosting(t *testing.T) {
	repo := &mockLedgerRepo{}
	svc := NewService(repo, openResolver(2024))

	if err := svc.Remove(context.Background(), id.New()); err != nil {
		t.Fatalf("removing a never-posted reference should be a no-op: %v", err)
	}
}
