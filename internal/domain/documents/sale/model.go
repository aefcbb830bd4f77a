// Package sale provides the Sale document, covering both sales and sale
// returns. A return carries the same lines but inverts every stock sign and
// swaps the debit/credit pattern of the posting.
package sale

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/posting"
	"bakehouse/internal/domain/registers/ledger"
)

// Sale represents a sale or sale return document.
type Sale struct {
	entity.Document

	// LocationID is the selling outlet
	LocationID id.ID `db:"location_id" json:"locationId"`

	// CustomerAccountID is the customer's receivable account
	CustomerAccountID id.ID `db:"customer_account_id" json:"customerAccountId"`

	// SaleAccountID is the income head credited with the taxable amount
	SaleAccountID id.ID `db:"sale_account_id" json:"saleAccountId"`

	// TaxAccountID is credited with the tax amount (required when tax > 0)
	TaxAccountID *id.ID `db:"tax_account_id" json:"taxAccountId,omitempty"`

	// IsReturn flips the document into a sale return
	IsReturn bool `db:"is_return" json:"isReturn"`

	// ReturnAgainstNo references the original sale's transaction number
	ReturnAgainstNo string `db:"return_against_no" json:"returnAgainstNo,omitempty"`

	// Totals (calculated from lines)
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`
	TotalTax    types.Money `db:"total_tax" json:"totalTax"`
	GrandTotal  types.Money `db:"grand_total" json:"grandTotal"`

	// Table part: sold items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one sold item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID id.ID `db:"item_id" json:"itemId"`

	Quantity   types.Quantity `db:"quantity" json:"quantity"`
	Rate       types.Money    `db:"rate" json:"rate"`
	TaxPercent types.Money    `db:"tax_percent" json:"taxPercent"`

	Amount    types.Money `db:"amount" json:"amount"`
	TaxAmount types.Money `db:"tax_amount" json:"taxAmount"`
	Total     types.Money `db:"total" json:"total"`
}

// NewSale creates a new sale document.
func NewSale(locationID, customerAccountID, saleAccountID id.ID) *Sale {
	return &Sale{
		Document:          entity.NewDocument(),
		LocationID:        locationID,
		CustomerAccountID: customerAccountID,
		SaleAccountID:     saleAccountID,
		TotalAmount:       types.Zero(),
		TotalTax:          types.Zero(),
		GrandTotal:        types.Zero(),
		Lines:             make([]Line, 0),
	}
}

// NewSaleReturn creates a return against an earlier sale.
func NewSaleReturn(locationID, customerAccountID, saleAccountID id.ID, againstNo string) *Sale {
	s := NewSale(locationID, customerAccountID, saleAccountID)
	s.IsReturn = true
	s.ReturnAgainstNo = againstNo
	return s
}

// AddLine adds an item line and recalculates totals.
func (s *Sale) AddLine(itemID id.ID, quantity types.Quantity, rate, taxPercent types.Money) {
	amount := rate.Mul(quantity.Decimal()).Round(2)
	taxAmount := amount.Mul(taxPercent).Div(types.NewMoney(100)).Round(2)

	s.Lines = append(s.Lines, Line{
		LineID:     id.New(),
		LineNo:     len(s.Lines) + 1,
		ItemID:     itemID,
		Quantity:   quantity,
		Rate:       rate,
		TaxPercent: taxPercent,
		Amount:     amount,
		TaxAmount:  taxAmount,
		Total:      amount.Add(taxAmount),
	})
	s.RecalculateTotals()
}

// RecalculateTotals updates document totals from lines.
func (s *Sale) RecalculateTotals() {
	s.TotalAmount = types.Zero()
	s.TotalTax = types.Zero()
	s.GrandTotal = types.Zero()

	for _, line := range s.Lines {
		s.TotalAmount = s.TotalAmount.Add(line.Amount)
		s.TotalTax = s.TotalTax.Add(line.TaxAmount)
		s.GrandTotal = s.GrandTotal.Add(line.Total)
	}
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(s.LocationID) {
		return apperror.NewValidation("location is required").
			WithDetail("field", "locationId")
	}
	if id.IsNil(s.CustomerAccountID) {
		return apperror.NewValidation("customer account is required").
			WithDetail("field", "customerAccountId")
	}
	if id.IsNil(s.SaleAccountID) {
		return apperror.NewValidation("sale account is required").
			WithDetail("field", "saleAccountId")
	}
	if len(s.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}
	if s.IsReturn && s.ReturnAgainstNo == "" {
		return apperror.NewValidation("return requires the original sale number").
			WithDetail("field", "returnAgainstNo")
	}

	for i, line := range s.Lines {
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

	if s.TotalTax.IsPositive() && (s.TaxAccountID == nil || id.IsNil(*s.TaxAccountID)) {
		return apperror.NewValidation("tax account is required when tax is charged").
			WithDetail("field", "taxAccountId")
	}

	return nil
}

// DocumentType implements posting.Postable.
func (s *Sale) DocumentType() string {
	if s.IsReturn {
		return ReturnDocumentType
	}
	return DocumentType
}

// StockMovements implements posting.StockSource.
// Sales move stock out; returns move it back in. Both are unrated so they
// never distort the weighted-average valuation.
func (s *Sale) StockMovements(ctx context.Context) ([]entity.StockMovement, error) {
	movementType := entity.MovementSale
	if s.IsReturn {
		movementType = entity.MovementSaleReturn
	}

	movements := make([]entity.StockMovement, 0, len(s.Lines))
	for _, line := range s.Lines {
		qty := line.Quantity.Neg()
		if s.IsReturn {
			qty = line.Quantity
		}
		movements = append(movements, entity.NewStockMovement(
			line.ItemID,
			s.LocationID,
			movementType,
			qty,
			nil,
			s.Number,
			s.Date,
		))
	}
	return movements, nil
}

// LedgerPosting implements posting.LedgerSource.
// Sale: debit customer gross, credit income and tax.
// Return: the exact mirror.
func (s *Sale) LedgerPosting(ctx context.Context) (*ledger.Posting, error) {
	if s.IsReturn {
		post := ledger.NewPosting(ledger.RefSaleReturn, s.ID, s.Number, s.Date)
		post.Debit(s.SaleAccountID, s.TotalAmount, "sale return")
		if s.TotalTax.IsPositive() && s.TaxAccountID != nil {
			post.Debit(*s.TaxAccountID, s.TotalTax, "sale return tax")
		}
		post.Credit(s.CustomerAccountID, s.GrandTotal, "customer refund")
		return post, nil
	}

	post := ledger.NewPosting(ledger.RefSale, s.ID, s.Number, s.Date)
	post.Debit(s.CustomerAccountID, s.GrandTotal, "customer receivable")
	post.Credit(s.SaleAccountID, s.TotalAmount, "sale")
	if s.TotalTax.IsPositive() && s.TaxAccountID != nil {
		post.Credit(*s.TaxAccountID, s.TotalTax, "sale tax")
	}
	return post, nil
}

// Ensure interface compliance at compile time.
var (
	_ posting.Postable     = (*Sale)(nil)
	_ posting.StockSource  = (*Sale)(nil)
	_ posting.LedgerSource = (*Sale)(nil)
)
