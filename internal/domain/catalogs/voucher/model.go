// Package voucher provides the VoucherType catalog.
// Voucher types scope manual journal vouchers: each type carries its own
// number prefix so JV series stay independent per type.
package voucher

import (
	"context"
	"strings"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/sequence"
)

// VoucherType represents a class of manual journal vouchers.
type VoucherType struct {
	entity.Catalog

	// PrefixCode is the configured number prefix for vouchers of this type.
	// When empty, a prefix is derived from the name.
	PrefixCode string `db:"prefix_code" json:"prefixCode"`

	// Description explains when this voucher type applies
	Description *string `db:"description" json:"description,omitempty"`

	// Active indicates the type accepts new vouchers
	Active bool `db:"active" json:"active"`
}

// NewVoucherType creates a new VoucherType with required fields.
func NewVoucherType(code, name string) *VoucherType {
	return &VoucherType{
		Catalog: entity.NewCatalog(code, name),
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (v *VoucherType) Validate(ctx context.Context) error {
	if err := v.Catalog.Validate(ctx); err != nil {
		return err
	}

	if len(v.PrefixCode) > sequence.MaxPrefixLen {
		return apperror.NewValidation("prefix code too long").
			WithDetail("field", "prefixCode").
			WithDetail("maxLength", sequence.MaxPrefixLen)
	}

	return nil
}

// SequencePrefix returns the voucher number prefix for this type.
// The configured prefix code wins; otherwise one is derived from the name.
func (v *VoucherType) SequencePrefix() string {
	if p := strings.TrimSpace(v.PrefixCode); p != "" {
		return strings.ToUpper(p)
	}
	return sequence.PrefixFromName(v.Name)
}
