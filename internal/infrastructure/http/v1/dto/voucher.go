package dto

import (
	"bakehouse/internal/domain/catalogs/voucher"
)

// CreateVoucherTypeRequest is the request body for creating a voucher type.
type CreateVoucherTypeRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	PrefixCode  string  `json:"prefixCode"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateVoucherTypeRequest) ToEntity() *voucher.VoucherType {
	vt := voucher.NewVoucherType(r.Code, r.Name)
	vt.PrefixCode = r.PrefixCode
	vt.Description = r.Description
	if r.Active != nil {
		vt.Active = *r.Active
	}
	return vt
}

// UpdateVoucherTypeRequest is the request body for updating a voucher type.
type UpdateVoucherTypeRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	PrefixCode  string  `json:"prefixCode"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
	Version     int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateVoucherTypeRequest) ApplyTo(vt *voucher.VoucherType) {
	vt.Code = r.Code
	vt.Name = r.Name
	vt.PrefixCode = r.PrefixCode
	vt.Description = r.Description
	vt.Active = r.Active
	vt.Version = r.Version
}
