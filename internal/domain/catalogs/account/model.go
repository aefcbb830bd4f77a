// Package account provides the LedgerAccount catalog.
// Accounts are the targets of double-entry postings: suppliers, customers,
// purchase and sale heads, tax heads, cash and bank.
package account

import (
	"context"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
)

// AccountGroup defines the account classification.
type AccountGroup string

const (
	GroupAsset     AccountGroup = "asset"
	GroupLiability AccountGroup = "liability"
	GroupIncome    AccountGroup = "income"
	GroupExpense   AccountGroup = "expense"
	GroupEquity    AccountGroup = "equity"
)

// LedgerAccount represents an account in the chart of accounts.
type LedgerAccount struct {
	entity.Catalog

	// Group classifies the account
	Group AccountGroup `db:"account_group" json:"group"`

	// Party marks supplier/customer accounts (personal ledgers)
	Party bool `db:"party" json:"party"`

	// Active indicates the account accepts postings
	Active bool `db:"active" json:"active"`
}

// NewLedgerAccount creates a new LedgerAccount with required fields.
func NewLedgerAccount(code, name string, group AccountGroup) *LedgerAccount {
	return &LedgerAccount{
		Catalog: entity.NewCatalog(code, name),
		Group:   group,
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (a *LedgerAccount) Validate(ctx context.Context) error {
	if err := a.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidAccountGroup(a.Group) {
		return apperror.NewValidation("invalid account group").
			WithDetail("field", "group").
			WithDetail("value", string(a.Group))
	}

	return nil
}

func isValidAccountGroup(g AccountGroup) bool {
	switch g {
	case GroupAsset, GroupLiability, GroupIncome, GroupExpense, GroupEquity:
		return true
	}
	return false
}
