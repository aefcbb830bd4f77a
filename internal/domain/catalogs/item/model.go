// Package item provides the Item catalog.
// Items are the raw materials, finished bakery products, and consumables
// that flow through the stock ledger.
package item

import (
	"context"

	"github.com/shopspring/decimal"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
)

// ItemKind defines the item category.
type ItemKind string

const (
	KindRawMaterial     ItemKind = "raw_material"     // flour, butter, yeast
	KindFinishedProduct ItemKind = "finished_product" // bread, pastry
	KindConsumable      ItemKind = "consumable"       // boxes, bags
)

// Unit defines the unit of measure.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitLitre Unit = "ltr"
	UnitPiece Unit = "pcs"
	UnitPack  Unit = "pack"
)

// Item represents a stock-tracked article.
type Item struct {
	entity.Catalog

	// Kind defines item category
	Kind ItemKind `db:"kind" json:"kind"`

	// Unit is the stock-keeping unit of measure
	Unit Unit `db:"unit" json:"unit"`

	// TaxPercent is the default tax rate applied on purchase/sale
	TaxPercent decimal.Decimal `db:"tax_percent" json:"taxPercent"`

	// StandardCost is the planned cost per unit (used for production receipts)
	StandardCost decimal.Decimal `db:"standard_cost" json:"standardCost"`

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`
}

// NewItem creates a new Item with required fields.
func NewItem(code, name string, kind ItemKind, unit Unit) *Item {
	return &Item{
		Catalog:      entity.NewCatalog(code, name),
		Kind:         kind,
		Unit:         unit,
		TaxPercent:   decimal.Zero,
		StandardCost: decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (i *Item) Validate(ctx context.Context) error {
	if err := i.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidItemKind(i.Kind) {
		return apperror.NewValidation("invalid item kind").
			WithDetail("field", "kind").
			WithDetail("value", string(i.Kind))
	}

	if !isValidUnit(i.Unit) {
		return apperror.NewValidation("invalid unit").
			WithDetail("field", "unit").
			WithDetail("value", string(i.Unit))
	}

	if i.TaxPercent.IsNegative() {
		return apperror.NewValidation("tax percent cannot be negative").
			WithDetail("field", "taxPercent")
	}

	if i.StandardCost.IsNegative() {
		return apperror.NewValidation("standard cost cannot be negative").
			WithDetail("field", "standardCost")
	}

	return nil
}

// IsRawMaterial returns true for kitchen input items.
func (i *Item) IsRawMaterial() bool {
	return i.Kind == KindRawMaterial
}

// IsFinishedProduct returns true for sellable production output.
func (i *Item) IsFinishedProduct() bool {
	return i.Kind == KindFinishedProduct
}

func isValidItemKind(k ItemKind) bool {
	switch k {
	case KindRawMaterial, KindFinishedProduct, KindConsumable:
		return true
	}
	return false
}

func isValidUnit(u Unit) bool {
	switch u {
	case UnitKg, UnitLitre, UnitPiece, UnitPack:
		return true
	}
	return false
}
