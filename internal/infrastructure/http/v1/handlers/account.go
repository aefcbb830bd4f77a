package handlers

import (
	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/catalogs/account"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// AccountHandler handles HTTP requests for the LedgerAccount catalog.
type AccountHandler struct {
	*CatalogHandler[*account.LedgerAccount, dto.CreateAccountRequest, dto.UpdateAccountRequest]
	service *account.Service
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(base *BaseHandler, service *account.Service) *AccountHandler {
	cfg := CatalogHandlerConfig[*account.LedgerAccount, dto.CreateAccountRequest, dto.UpdateAccountRequest]{
		Service:    service.CatalogService,
		EntityName: "account",
		MapCreateDTO: func(req dto.CreateAccountRequest) *account.LedgerAccount {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateAccountRequest, existing *account.LedgerAccount) *account.LedgerAccount {
			req.ApplyTo(existing)
			return existing
		},
	}

	return &AccountHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// List overrides the generic list to support the group filter.
func (h *AccountHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := h.ParseListFilter(c)

	if group := c.Query("group"); group != "" {
		result, err := h.service.FindByGroup(ctx, account.AccountGroup(group), filter)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.RespondList(c, result)
		return
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.RespondList(c, result)
}

// RegisterRoutes registers account routes.
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/by-code/:code", h.GetByCode)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/deletion-mark", h.SetDeletionMark)
}
