package handlers

import (
	"bakehouse/internal/domain/catalogs/voucher"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// VoucherTypeHandler handles HTTP requests for the VoucherType catalog.
type VoucherTypeHandler struct {
	*CatalogHandler[*voucher.VoucherType, dto.CreateVoucherTypeRequest, dto.UpdateVoucherTypeRequest]
}

// NewVoucherTypeHandler creates a new voucher type handler.
func NewVoucherTypeHandler(base *BaseHandler, service *voucher.Service) *VoucherTypeHandler {
	cfg := CatalogHandlerConfig[*voucher.VoucherType, dto.CreateVoucherTypeRequest, dto.UpdateVoucherTypeRequest]{
		Service:    service.CatalogService,
		EntityName: "voucher-type",
		MapCreateDTO: func(req dto.CreateVoucherTypeRequest) *voucher.VoucherType {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateVoucherTypeRequest, existing *voucher.VoucherType) *voucher.VoucherType {
			req.ApplyTo(existing)
			return existing
		},
	}

	return &VoucherTypeHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
	}
}
