// Package purchase provides the Purchase document.
// Records goods bought from a supplier into a location: inbound rated stock
// movements plus a three-way posting of purchase, tax, and supplier payable.
package purchase

import (
	"context"
	"time"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/posting"
	"bakehouse/internal/domain/registers/ledger"
)

// Purchase represents a supplier purchase document.
type Purchase struct {
	entity.Document

	// LocationID is the receiving outlet or kitchen
	LocationID id.ID `db:"location_id" json:"locationId"`

	// SupplierAccountID is the supplier's payable account
	SupplierAccountID id.ID `db:"supplier_account_id" json:"supplierAccountId"`

	// PurchaseAccountID is the expense head debited with the taxable amount
	PurchaseAccountID id.ID `db:"purchase_account_id" json:"purchaseAccountId"`

	// TaxAccountID is debited with the tax amount (required when tax > 0)
	TaxAccountID *id.ID `db:"tax_account_id" json:"taxAccountId,omitempty"`

	// Supplier's invoice reference
	InvoiceNo   string     `db:"invoice_no" json:"invoiceNo,omitempty"`
	InvoiceDate *time.Time `db:"invoice_date" json:"invoiceDate,omitempty"`

	// Totals (calculated from lines)
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`
	TotalTax    types.Money `db:"total_tax" json:"totalTax"`
	GrandTotal  types.Money `db:"grand_total" json:"grandTotal"`

	// Table part: purchased items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one purchased item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID id.ID `db:"item_id" json:"itemId"`

	Quantity   types.Quantity `db:"quantity" json:"quantity"`
	Rate       types.Money    `db:"rate" json:"rate"`
	TaxPercent types.Money    `db:"tax_percent" json:"taxPercent"`

	// Amount is quantity * rate, before tax
	Amount    types.Money `db:"amount" json:"amount"`
	TaxAmount types.Money `db:"tax_amount" json:"taxAmount"`
	Total     types.Money `db:"total" json:"total"`
}

// NewPurchase creates a new purchase document.
func NewPurchase(locationID, supplierAccountID, purchaseAccountID id.ID) *Purchase {
	return &Purchase{
		Document:          entity.NewDocument(),
		LocationID:        locationID,
		SupplierAccountID: supplierAccountID,
		PurchaseAccountID: purchaseAccountID,
		TotalAmount:       types.Zero(),
		TotalTax:          types.Zero(),
		GrandTotal:        types.Zero(),
		Lines:             make([]Line, 0),
	}
}

// AddLine adds an item line and recalculates totals.
func (p *Purchase) AddLine(itemID id.ID, quantity types.Quantity, rate, taxPercent types.Money) {
	amount := rate.Mul(quantity.Decimal()).Round(2)
	taxAmount := amount.Mul(taxPercent).Div(types.NewMoney(100)).Round(2)

	p.Lines = append(p.Lines, Line{
		LineID:     id.New(),
		LineNo:     len(p.Lines) + 1,
		ItemID:     itemID,
		Quantity:   quantity,
		Rate:       rate,
		TaxPercent: taxPercent,
		Amount:     amount,
		TaxAmount:  taxAmount,
		Total:      amount.Add(taxAmount),
	})
	p.RecalculateTotals()
}

// RecalculateTotals updates document totals from lines.
func (p *Purchase) RecalculateTotals() {
	p.TotalAmount = types.Zero()
	p.TotalTax = types.Zero()
	p.GrandTotal = types.Zero()

	for _, line := range p.Lines {
		p.TotalAmount = p.TotalAmount.Add(line.Amount)
		p.TotalTax = p.TotalTax.Add(line.TaxAmount)
		p.GrandTotal = p.GrandTotal.Add(line.Total)
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.LocationID) {
		return apperror.NewValidation("location is required").
			WithDetail("field", "locationId")
	}
	if id.IsNil(p.SupplierAccountID) {
		return apperror.NewValidation("supplier account is required").
			WithDetail("field", "supplierAccountId")
	}
	if id.IsNil(p.PurchaseAccountID) {
		return apperror.NewValidation("purchase account is required").
			WithDetail("field", "purchaseAccountId")
	}
	if len(p.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range p.Lines {
		if id.IsNil(line.ItemID) {
			return apperror.NewValidation("item is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Rate.IsNegative() {
			return apperror.NewValidation("rate cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	if p.TotalTax.IsPositive() && (p.TaxAccountID == nil || id.IsNil(*p.TaxAccountID)) {
		return apperror.NewValidation("tax account is required when tax is charged").
			WithDetail("field", "taxAccountId")
	}

	return nil
}

// DocumentType implements posting.Postable.
func (p *Purchase) DocumentType() string {
	return DocumentType
}

// StockMovements implements posting.StockSource.
// Each line becomes an inbound rated movement; the rate excludes tax so the
// weighted-average valuation is tax-free.
func (p *Purchase) StockMovements(ctx context.Context) ([]entity.StockMovement, error) {
	movements := make([]entity.StockMovement, 0, len(p.Lines))
	for _, line := range p.Lines {
		rate := line.Rate
		movements = append(movements, entity.NewStockMovement(
			line.ItemID,
			p.LocationID,
			entity.MovementPurchase,
			line.Quantity,
			&rate,
			p.Number,
			p.Date,
		))
	}
	return movements, nil
}

// LedgerPosting implements posting.LedgerSource.
// Debit purchase (taxable) and tax, credit supplier (gross). Balanced by
// construction since the gross total is the sum of the other two.
func (p *Purchase) LedgerPosting(ctx context.Context) (*ledger.Posting, error) {
	post := ledger.NewPosting(ledger.RefPurchase, p.ID, p.Number, p.Date)
	post.Debit(p.PurchaseAccountID, p.TotalAmount, "purchase")
	if p.TotalTax.IsPositive() && p.TaxAccountID != nil {
		post.Debit(*p.TaxAccountID, p.TotalTax, "purchase tax")
	}
	post.Credit(p.SupplierAccountID, p.GrandTotal, "supplier payable")
	return post, nil
}

// Ensure interface compliance at compile time.
var (
	_ posting.Postable     = (*Purchase)(nil)
	_ posting.StockSource  = (*Purchase)(nil)
	_ posting.LedgerSource = (*Purchase)(nil)
)
