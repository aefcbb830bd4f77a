package handlers

import (
	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/catalogs/location"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// LocationHandler handles HTTP requests for the Location catalog.
type LocationHandler struct {
	*CatalogHandler[*location.Location, dto.CreateLocationRequest, dto.UpdateLocationRequest]
	service *location.Service
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(base *BaseHandler, service *location.Service) *LocationHandler {
	cfg := CatalogHandlerConfig[*location.Location, dto.CreateLocationRequest, dto.UpdateLocationRequest]{
		Service:    service.CatalogService,
		EntityName: "location",
		MapCreateDTO: func(req dto.CreateLocationRequest) *location.Location {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateLocationRequest, existing *location.Location) *location.Location {
			req.ApplyTo(existing)
			return existing
		},
	}

	return &LocationHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// Active handles GET /catalog/location/active - list operational locations.
func (h *LocationHandler) Active(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.service.FindActive(ctx, h.ParseListFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.RespondList(c, result)
}

// RegisterRoutes registers location routes.
func (h *LocationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/active", h.Active)
	h.CatalogHandler.RegisterRoutes(rg)
}
