package posting

import (
	"context"
	"errors"
	"testing"
	"time"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/fiscal"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/sequence"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/registers/ledger"
	"bakehouse/internal/domain/registers/stock"
)

// recorder collects the order of register operations so tests can assert
// the pipeline sequence.
type recorder struct {
	ops []string
}

type mockTxManager struct {
	commits   int
	rollbacks int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *mockTxManager) RunSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *mockTxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.rollbacks++
		return err
	}
	m.commits++
	return nil
}

type mockStockRepo struct {
	stock.Repository

	rec       *recorder
	created   []entity.StockMovement
	createErr error
}

func (m *mockStockRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.rec.ops = append(m.rec.ops, "stock.create")
	m.created = append(m.created, movements...)
	return nil
}

func (m *mockStockRepo) DeleteByTransactionNo(ctx context.Context, transactionNo string) error {
	m.rec.ops = append(m.rec.ops, "stock.delete")
	return nil
}

type mockLedgerRepo struct {
	ledger.Repository

	rec       *recorder
	active    *ledger.Posting
	created   []*ledger.Posting
	createErr error
}

func (m *mockLedgerRepo) CreatePosting(ctx context.Context, posting *ledger.Posting) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.rec.ops = append(m.rec.ops, "ledger.create")
	m.created = append(m.created, posting)
	return nil
}

func (m *mockLedgerRepo) FindActiveByReference(ctx context.Context, refID id.ID) (*ledger.Posting, error) {
	return m.active, nil
}

func (m *mockLedgerRepo) DeactivateByReference(ctx context.Context, refID id.ID) (*ledger.Posting, error) {
	m.rec.ops = append(m.rec.ops, "ledger.deactivate")
	prev := m.active
	m.active = nil
	return prev, nil
}

type mockResolver struct {
	year fiscal.FinancialYear
}

func (m *mockResolver) ByDate(ctx context.Context, date time.Time) (fiscal.FinancialYear, error) {
	return m.year, nil
}

type mockAudit struct {
	rec     *recorder
	actions []string
}

func (m *mockAudit) LogChange(ctx context.Context, action, entityType string, entityID id.ID, data any) error {
	m.rec.ops = append(m.rec.ops, "audit."+action)
	m.actions = append(m.actions, action)
	return nil
}

// testDoc is a minimal postable document writing one movement and a
// balanced two-line posting.
type testDoc struct {
	entity.Document

	itemID     id.ID
	locationID id.ID
	debitAcc   id.ID
	creditAcc  id.ID
	amount     types.Money
	quantity   types.Quantity
}

func newTestDoc(date time.Time) *testDoc {
	d := &testDoc{
		Document:   entity.NewDocument(),
		itemID:     id.New(),
		locationID: id.New(),
		debitAcc:   id.New(),
		creditAcc:  id.New(),
		amount:     types.NewMoney(250),
		quantity:   types.NewQuantityFromFloat64(5),
	}
	d.Date = date
	return d
}

func (d *testDoc) DocumentType() string { return "test_doc" }

func (d *testDoc) StockMovements(ctx context.Context) ([]entity.StockMovement, error) {
	m := entity.NewStockMovement(
		d.itemID, d.locationID,
		entity.MovementPurchase,
		d.quantity, nil,
		"", time.Time{},
	)
	return []entity.StockMovement{m}, nil
}

func (d *testDoc) LedgerPosting(ctx context.Context) (*ledger.Posting, error) {
	p := ledger.NewPosting(ledger.RefPurchase, d.ID, d.Number, d.Date)
	p.Debit(d.debitAcc, d.amount, "")
	p.Credit(d.creditAcc, d.amount, "")
	return p, nil
}

type engineFixture struct {
	engine     *Engine
	txManager  *mockTxManager
	stockRepo  *mockStockRepo
	ledgerRepo *mockLedgerRepo
	audit      *mockAudit
	rec        *recorder
}

func newEngineFixture(year fiscal.FinancialYear) *engineFixture {
	rec := &recorder{}
	txManager := &mockTxManager{}
	stockRepo := &mockStockRepo{rec: rec}
	ledgerRepo := &mockLedgerRepo{rec: rec}
	resolver := &mockResolver{year: year}
	audit := &mockAudit{rec: rec}

	engine := NewEngine(
		txManager,
		&sequence.MockGenerator{},
		stock.NewService(stockRepo),
		ledger.NewService(ledgerRepo, resolver),
		resolver,
		audit,
	)

	return &engineFixture{
		engine:     engine,
		txManager:  txManager,
		stockRepo:  stockRepo,
		ledgerRepo: ledgerRepo,
		audit:      audit,
		rec:        rec,
	}
}

func postingDate() time.Time {
	return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestEngine_Save_FirstPost(t *testing.T) {
	f := newEngineFixture(fiscal.NewFinancialYear(2024))
	doc := newTestDoc(postingDate())

	persisted := false
	err := f.engine.Save(context.Background(), doc, sequence.NewConfig("MUM", "TD"), func(ctx context.Context) error {
		persisted = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Number != "MUM24TD000001" {
		t.Errorf("expected number MUM24TD000001, got %q", doc.Number)
	}
	if id.IsNil(doc.FiscalYearID) {
		t.Error("fiscal year should be resolved onto the document")
	}
	if !persisted {
		t.Error("persist callback should run")
	}
	if f.txManager.commits != 1 {
		t.Errorf("expected 1 commit, got %d", f.txManager.commits)
	}

	if len(f.stockRepo.created) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(f.stockRepo.created))
	}
	movement := f.stockRepo.created[0]
	if movement.TransactionNo != doc.Number {
		t.Errorf("movement should carry the document number, got %q", movement.TransactionNo)
	}
	if !movement.TransactionDate.Equal(doc.Date) {
		t.Errorf("movement should carry the document date")
	}

	if len(f.ledgerRepo.created) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(f.ledgerRepo.created))
	}
	if f.ledgerRepo.created[0].ReferenceNo != doc.Number {
		t.Errorf("posting should carry the document number")
	}

	expected := []string{"stock.delete", "stock.create", "ledger.create", "audit.create"}
	if len(f.rec.ops) != len(expected) {
		t.Fatalf("expected ops %v, got %v", expected, f.rec.ops)
	}
	for i, op := range expected {
		if f.rec.ops[i] != op {
			t.Errorf("op %d: expected %s, got %s", i, op, f.rec.ops[i])
		}
	}
}

func TestEngine_Save_EditKeepsNumber(t *testing.T) {
	f := newEngineFixture(fiscal.NewFinancialYear(2024))
	doc := newTestDoc(postingDate())
	doc.Number = "MUM24TD000042"

	// An active posting exists from the first save.
	prev := ledger.NewPosting(ledger.RefPurchase, doc.ID, doc.Number, doc.Date)
	prev.Debit(id.New(), types.NewMoney(1), "")
	prev.Credit(id.New(), types.NewMoney(1), "")
	f.ledgerRepo.active = prev

	err := f.engine.Save(context.Background(), doc, sequence.NewConfig("MUM", "TD"), func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Number != "MUM24TD000042" {
		t.Errorf("edit must keep the assigned number, got %q", doc.Number)
	}

	expected := []string{"stock.delete", "stock.create", "ledger.deactivate", "ledger.create", "audit.update"}
	if len(f.rec.ops) != len(expected) {
		t.Fatalf("expected ops %v, got %v", expected, f.rec.ops)
	}
	for i, op := range expected {
		if f.rec.ops[i] != op {
			t.Errorf("op %d: expected %s, got %s", i, op, f.rec.ops[i])
		}
	}
}

func TestEngine_Save_LockedYear(t *testing.T) {
	year := fiscal.NewFinancialYear(2024)
	year.Locked = true
	f := newEngineFixture(year)
	doc := newTestDoc(postingDate())

	err := f.engine.Save(context.Background(), doc, sequence.NewConfig("MUM", "TD"), func(ctx context.Context) error {
		t.Error("persist must not run for a locked year")
		return nil
	})
	if err == nil {
		t.Fatal("expected error for locked year")
	}
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeFiscalYearLocked {
		t.Errorf("expected fiscal year locked error, got %v", err)
	}
	if doc.Number != "" {
		t.Error("no number should be assigned on a failed save")
	}
}

func TestEngine_Save_RollbackOnLedgerFailure(t *testing.T) {
	f := newEngineFixture(fiscal.NewFinancialYear(2024))
	f.ledgerRepo.createErr = errors.New("boom")
	doc := newTestDoc(postingDate())

	hookRan := false
	f.engine.OnAfterSave(func(ctx context.Context, d Postable) { hookRan = true })

	err := f.engine.Save(context.Background(), doc, sequence.NewConfig("MUM", "TD"), func(ctx context.Context) error {
		return nil
	})
	if err == nil {
		t.Fatal("expected error from ledger write")
	}
	if f.txManager.rollbacks != 1 {
		t.Errorf("expected 1 rollback, got %d", f.txManager.rollbacks)
	}
	if hookRan {
		t.Error("hooks must not run when the transaction fails")
	}
}

func TestEngine_Save_HooksRunAfterCommit(t *testing.T) {
	f := newEngineFixture(fiscal.NewFinancialYear(2024))
	doc := newTestDoc(postingDate())

	var hookedNumber string
	commitsAtHook := -1
	f.engine.OnAfterSave(func(ctx context.Context, d Postable) {
		hookedNumber = d.GetNumber()
		commitsAtHook = f.txManager.commits
	})
	// A panicking hook must not break the save or later hooks.
	secondRan := false
	f.engine.OnAfterSave(func(ctx context.Context, d Postable) { panic("hook failure") })
	f.engine.OnAfterSave(func(ctx context.Context, d Postable) { secondRan = true })

	err := f.engine.Save(context.Background(), doc, sequence.NewConfig("MUM", "TD"), func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hookedNumber != doc.Number {
		t.Errorf("hook should see the posted document, got number %q", hookedNumber)
	}
	if commitsAtHook != 1 {
		t.Errorf("hook must run after commit, commits at hook time = %d", commitsAtHook)
	}
	if !secondRan {
		t.Error("hook after a panicking hook should still run")
	}
}

func TestEngine_Remove(t *testing.T) {
	f := newEngineFixture(fiscal.NewFinancialYear(2024))
	doc := newTestDoc(postingDate())
	doc.Number = "MUM24TD000007"

	prev := ledger.NewPosting(ledger.RefPurchase, doc.ID, doc.Number, doc.Date)
	prev.Debit(id.New(), types.NewMoney(1), "")
	prev.Credit(id.New(), types.NewMoney(1), "")
	f.ledgerRepo.active = prev

	hookRan := false
	f.engine.OnAfterDelete(func(ctx context.Context, d Postable) { hookRan = true })

	persisted := false
	err := f.engine.Remove(context.Background(), doc, func(ctx context.Context) error {
		persisted = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !persisted {
		t.Error("persist callback should run")
	}
	if !hookRan {
		t.Error("after-delete hook should run")
	}

	expected := []string{"stock.delete", "ledger.deactivate", "audit.delete"}
	if len(f.rec.ops) != len(expected) {
		t.Fatalf("expected ops %v, got %v", expected, f.rec.ops)
	}
	for i, op := range expected {
		if f.rec.ops[i] != op {
			t.Errorf("op %d: expected %s, got %s", i, op, f.rec.ops[i])
		}
	}
}

func TestEngine_Recover(t *testing.T) {
	f := newEngineFixture(fiscal.NewFinancialYear(2024))
	doc := newTestDoc(postingDate())
	doc.Number = "MUM24TD000009"
	doc.DeletionMark = true

	err := f.engine.Recover(context.Background(), doc, func(ctx context.Context) error {
		doc.DeletionMark = false
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.DeletionMark {
		t.Error("persist callback should clear the deletion mark")
	}
	if len(f.stockRepo.created) != 1 {
		t.Errorf("recover should re-record movements, got %d", len(f.stockRepo.created))
	}
	if len(f.ledgerRepo.created) != 1 {
		t.Errorf("recover should re-post ledger entries, got %d", len(f.ledgerRepo.created))
	}
	if f.audit.actions[len(f.audit.actions)-1] != ActionRecover {
		t.Errorf("expected recover audit action, got %v", f.audit.actions)
	}
}
