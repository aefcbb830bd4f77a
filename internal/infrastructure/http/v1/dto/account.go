package dto

import (
	"bakehouse/internal/domain/catalogs/account"
)

// CreateAccountRequest is the request body for creating a ledger account.
type CreateAccountRequest struct {
	Code   string               `json:"code"`
	Name   string               `json:"name" binding:"required"`
	Group  account.AccountGroup `json:"group" binding:"required"`
	Party  bool                 `json:"party"`
	Active *bool                `json:"active"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAccountRequest) ToEntity() *account.LedgerAccount {
	acc := account.NewLedgerAccount(r.Code, r.Name, r.Group)
	acc.Party = r.Party
	if r.Active != nil {
		acc.Active = *r.Active
	}
	return acc
}

// UpdateAccountRequest is the request body for updating a ledger account.
type UpdateAccountRequest struct {
	Code    string               `json:"code"`
	Name    string               `json:"name" binding:"required"`
	Group   account.AccountGroup `json:"group" binding:"required"`
	Party   bool                 `json:"party"`
	Active  bool                 `json:"active"`
	Version int                  `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateAccountRequest) ApplyTo(acc *account.LedgerAccount) {
	acc.Code = r.Code
	acc.Name = r.Name
	acc.Group = r.Group
	acc.Party = r.Party
	acc.Active = r.Active
	acc.Version = r.Version
}
