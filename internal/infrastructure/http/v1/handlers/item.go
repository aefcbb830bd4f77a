package handlers

import (
	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/catalogs/item"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// ItemHandler handles HTTP requests for the Item catalog.
type ItemHandler struct {
	*CatalogHandler[*item.Item, dto.CreateItemRequest, dto.UpdateItemRequest]
	service *item.Service
}

// NewItemHandler creates a new item handler.
func NewItemHandler(base *BaseHandler, service *item.Service) *ItemHandler {
	cfg := CatalogHandlerConfig[*item.Item, dto.CreateItemRequest, dto.UpdateItemRequest]{
		Service:    service.CatalogService,
		EntityName: "item",
		MapCreateDTO: func(req dto.CreateItemRequest) *item.Item {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateItemRequest, existing *item.Item) *item.Item {
			req.ApplyTo(existing)
			return existing
		},
	}

	return &ItemHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// List overrides the generic list to support the kind filter.
func (h *ItemHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := h.ParseListFilter(c)

	if kind := c.Query("kind"); kind != "" {
		result, err := h.service.FindByKind(ctx, item.ItemKind(kind), filter)
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

// RegisterRoutes registers item routes.
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/by-code/:code", h.GetByCode)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/deletion-mark", h.SetDeletionMark)
}
