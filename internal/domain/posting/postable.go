// Package posting provides the document posting engine.
//
// Saving a business document is a pipeline: resolve and check the financial
// year, assign a transaction number on first save, replace stock movements,
// persist the header with a fresh detail revision, replace the accounting
// posting, and write the audit trail. The engine runs the whole pipeline
// inside one serializable transaction so a failure at any step leaves no
// partial state.
package posting

import (
	"context"
	"time"

	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/domain/registers/ledger"
	"bakehouse/internal/domain/registers/stock"
)

// Postable is implemented by every document the engine can post.
// entity.Document provides most of it; concrete documents add
// DocumentType plus the optional source interfaces below.
type Postable interface {
	entity.Validatable

	GetID() id.ID
	GetNumber() string
	SetNumber(number string)
	GetDate() time.Time
	IsDeleted() bool
	SetFiscalYearID(yearID id.ID)

	// DocumentType names the document kind (purchase, sale, ...).
	DocumentType() string
}

// StockSource is implemented by documents that write stock movements.
// Movements are returned without transaction number or date; the engine
// stamps both before recording.
type StockSource interface {
	StockMovements(ctx context.Context) ([]entity.StockMovement, error)
}

// LedgerSource is implemented by documents that write accounting entries.
// The returned posting is built without a reference number; the engine
// stamps it before reposting.
type LedgerSource interface {
	LedgerPosting(ctx context.Context) (*ledger.Posting, error)
}

// StockPreparer is implemented by documents whose lines depend on register
// state, such as stock adjustments computing deltas against the closing
// balance. PrepareStock runs inside the posting transaction, after the
// document's own previous movements have been removed.
type StockPreparer interface {
	PrepareStock(ctx context.Context, register *stock.Service) error
}

// AfterSaveHook runs after a successful commit. Errors are logged and
// swallowed; a hook can never roll back a posted document.
type AfterSaveHook func(ctx context.Context, doc Postable)

// Audit actions recorded by the engine.
const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionRecover = "recover"
)

// ChangeLogger records document changes for the audit trail.
// Implemented by the compressed audit store in infrastructure.
type ChangeLogger interface {
	LogChange(ctx context.Context, action, entityType string, entityID id.ID, data any) error
}
