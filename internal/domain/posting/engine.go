package posting

import (
	"context"
	"fmt"

	"bakehouse/internal/core/fiscal"
	"bakehouse/internal/core/sequence"
	"bakehouse/internal/core/tx"
	"bakehouse/internal/domain/registers/ledger"
	"bakehouse/internal/domain/registers/stock"
	"bakehouse/pkg/logger"
)

// Engine runs the document posting pipeline.
type Engine struct {
	txManager tx.SerializableManager
	sequences sequence.Generator
	stock     *stock.Service
	ledger    *ledger.Service
	years     fiscal.Resolver
	audit     ChangeLogger

	afterSave   []AfterSaveHook
	afterDelete []AfterSaveHook
}

// NewEngine creates a posting engine. The audit logger may be nil.
func NewEngine(
	txManager tx.SerializableManager,
	sequences sequence.Generator,
	stockSvc *stock.Service,
	ledgerSvc *ledger.Service,
	years fiscal.Resolver,
	audit ChangeLogger,
) *Engine {
	return &Engine{
		txManager: txManager,
		sequences: sequences,
		stock:     stockSvc,
		ledger:    ledgerSvc,
		years:     years,
		audit:     audit,
	}
}

// OnAfterSave registers a hook that runs after a successful save commit.
func (e *Engine) OnAfterSave(hook AfterSaveHook) {
	e.afterSave = append(e.afterSave, hook)
}

// OnAfterDelete registers a hook that runs after a successful delete commit.
func (e *Engine) OnAfterDelete(hook AfterSaveHook) {
	e.afterDelete = append(e.afterDelete, hook)
}

// Save posts a document. The persist callback writes the document header
// and its detail lines; it runs inside the posting transaction and must use
// the transaction-aware querier from the context.
//
// On first save the document gets its transaction number from the sequence
// generator, inside the same transaction, so an aborted save never burns a
// number into a committed document. On edit the number is kept and the
// previous movements and posting are replaced wholesale.
func (e *Engine) Save(ctx context.Context, doc Postable, cfg sequence.Config, persist func(ctx context.Context) error) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	isNew := doc.GetNumber() == ""
	action := ActionUpdate
	if isNew {
		action = ActionCreate
	}

	err := e.txManager.RunSerializable(ctx, func(ctx context.Context) error {
		year, err := e.years.ByDate(ctx, doc.GetDate())
		if err != nil {
			return fmt.Errorf("resolve financial year: %w", err)
		}
		if err := year.CheckOpen(); err != nil {
			return err
		}
		doc.SetFiscalYearID(year.ID)

		if isNew {
			number, err := e.sequences.Next(ctx, cfg, doc.GetDate())
			if err != nil {
				return fmt.Errorf("next transaction number: %w", err)
			}
			doc.SetNumber(number)
		}

		// Previous movements go first so register state reflects the world
		// without this document. Adjustment deltas depend on that.
		if err := e.stock.RemoveByTransactionNo(ctx, doc.GetNumber()); err != nil {
			return err
		}

		if preparer, ok := doc.(StockPreparer); ok {
			if err := preparer.PrepareStock(ctx, e.stock); err != nil {
				return err
			}
		}

		if err := persist(ctx); err != nil {
			return err
		}

		if err := e.recordMovements(ctx, doc); err != nil {
			return err
		}

		if err := e.repostLedger(ctx, doc); err != nil {
			return err
		}

		e.logChange(ctx, action, doc)

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "document posted",
		"type", doc.DocumentType(),
		"number", doc.GetNumber(),
		"action", action,
	)

	e.runHooks(ctx, e.afterSave, doc)

	return nil
}

// Remove unposts a document: stock movements are hard deleted, the
// accounting posting is soft deleted, and the persist callback soft
// deletes the header. The transaction number stays reserved.
func (e *Engine) Remove(ctx context.Context, doc Postable, persist func(ctx context.Context) error) error {
	err := e.txManager.RunSerializable(ctx, func(ctx context.Context) error {
		year, err := e.years.ByDate(ctx, doc.GetDate())
		if err != nil {
			return fmt.Errorf("resolve financial year: %w", err)
		}
		if err := year.CheckOpen(); err != nil {
			return err
		}

		if err := e.stock.RemoveByTransactionNo(ctx, doc.GetNumber()); err != nil {
			return err
		}

		if err := e.ledger.Remove(ctx, doc.GetID()); err != nil {
			return err
		}

		if err := persist(ctx); err != nil {
			return err
		}

		e.logChange(ctx, ActionDelete, doc)

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "document unposted",
		"type", doc.DocumentType(),
		"number", doc.GetNumber(),
	)

	e.runHooks(ctx, e.afterDelete, doc)

	return nil
}

// Recover re-posts a soft-deleted document under its original transaction
// number. The persist callback clears the deletion mark on the header.
func (e *Engine) Recover(ctx context.Context, doc Postable, persist func(ctx context.Context) error) error {
	err := e.txManager.RunSerializable(ctx, func(ctx context.Context) error {
		year, err := e.years.ByDate(ctx, doc.GetDate())
		if err != nil {
			return fmt.Errorf("resolve financial year: %w", err)
		}
		if err := year.CheckOpen(); err != nil {
			return err
		}

		if err := e.stock.RemoveByTransactionNo(ctx, doc.GetNumber()); err != nil {
			return err
		}

		if preparer, ok := doc.(StockPreparer); ok {
			if err := preparer.PrepareStock(ctx, e.stock); err != nil {
				return err
			}
		}

		if err := persist(ctx); err != nil {
			return err
		}

		if err := e.recordMovements(ctx, doc); err != nil {
			return err
		}

		if err := e.repostLedger(ctx, doc); err != nil {
			return err
		}

		e.logChange(ctx, ActionRecover, doc)

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "document recovered",
		"type", doc.DocumentType(),
		"number", doc.GetNumber(),
	)

	e.runHooks(ctx, e.afterSave, doc)

	return nil
}

// recordMovements stamps the transaction number and date onto the
// document's movements and records them.
func (e *Engine) recordMovements(ctx context.Context, doc Postable) error {
	source, ok := doc.(StockSource)
	if !ok {
		return nil
	}

	movements, err := source.StockMovements(ctx)
	if err != nil {
		return err
	}
	for i := range movements {
		movements[i].TransactionNo = doc.GetNumber()
		movements[i].TransactionDate = doc.GetDate()
	}

	return e.stock.RecordMovements(ctx, movements)
}

// repostLedger stamps the reference number onto the document's posting and
// replaces the previous set.
func (e *Engine) repostLedger(ctx context.Context, doc Postable) error {
	source, ok := doc.(LedgerSource)
	if !ok {
		return nil
	}

	posting, err := source.LedgerPosting(ctx)
	if err != nil {
		return err
	}
	if posting == nil {
		return nil
	}
	posting.ReferenceNo = doc.GetNumber()
	posting.Number = doc.GetNumber()

	return e.ledger.Repost(ctx, posting)
}

func (e *Engine) logChange(ctx context.Context, action string, doc Postable) {
	if e.audit == nil {
		return
	}
	if err := e.audit.LogChange(ctx, action, doc.DocumentType(), doc.GetID(), doc); err != nil {
		logger.Warn(ctx, "audit log write failed",
			"type", doc.DocumentType(),
			"number", doc.GetNumber(),
			"error", err,
		)
	}
}

func (e *Engine) runHooks(ctx context.Context, hooks []AfterSaveHook, doc Postable) {
	for _, hook := range hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error(ctx, "after-save hook panicked", "panic", r)
				}
			}()
			hook(ctx, doc)
		}()
	}
}
