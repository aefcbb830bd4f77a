package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
	"bakehouse/internal/domain/registers/stock"
)

// StockHandler exposes stock register reports.
type StockHandler struct {
	*DocumentHandler
	service *stock.Service
}

// NewStockHandler creates a new stock register handler.
func NewStockHandler(base *DocumentHandler, service *stock.Service) *StockHandler {
	return &StockHandler{DocumentHandler: base, service: service}
}

// Summary handles GET /register/stock/summary - period totals for one item
// at one location: opening, inbound, outbound, closing, weighted average rate.
func (h *StockHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := id.Parse(c.Query("itemId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("itemId is required"))
		return
	}
	locationID, err := id.Parse(c.Query("locationId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("locationId is required"))
		return
	}

	filter := stock.SummaryFilter{
		ItemID:     itemID,
		LocationID: locationID,
		To:         time.Now().UTC(),
	}
	if from := h.QueryDate(c, "from"); from != nil {
		filter.From = *from
	}
	if to := h.QueryDate(c, "to"); to != nil {
		filter.To = *to
	}

	summary, err := h.service.GetSummary(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// LocationSummary handles GET /register/stock/location-summary - per-item
// totals for every item that moved at a location.
func (h *StockHandler) LocationSummary(c *gin.Context) {
	ctx := c.Request.Context()

	locationID, err := id.Parse(c.Query("locationId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("locationId is required"))
		return
	}

	var from time.Time
	to := time.Now().UTC()
	if parsed := h.QueryDate(c, "from"); parsed != nil {
		from = *parsed
	}
	if parsed := h.QueryDate(c, "to"); parsed != nil {
		to = *parsed
	}

	summaries, err := h.service.GetLocationSummary(ctx, locationID, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": summaries})
}

// Movements handles GET /register/stock/movements/:itemId - movement history.
func (h *StockHandler) Movements(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := id.Parse(c.Param("itemId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid itemId format"))
		return
	}

	filter := stock.MovementFilter{
		LocationID: h.QueryID(c, "locationId"),
		FromDate:   h.QueryDate(c, "dateFrom"),
		ToDate:     h.QueryDate(c, "dateTo"),
		Limit:      h.ParseIntQuery(c, "limit", 100),
		Offset:     h.ParseIntQuery(c, "offset", 0),
	}
	if movementType := c.Query("movementType"); movementType != "" {
		val := entity.MovementType(movementType)
		filter.MovementType = &val
	}

	movements, err := h.service.GetMovementHistory(ctx, itemID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": movements})
}

// ByTransaction handles GET /register/stock/transaction/:number - the
// movement set written by one document.
func (h *StockHandler) ByTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	movements, err := h.service.GetByTransactionNo(ctx, c.Param("number"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": movements})
}

// RegisterRoutes registers stock register routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", h.Summary)
	rg.GET("/location-summary", h.LocationSummary)
	rg.GET("/movements/:itemId", h.Movements)
	rg.GET("/transaction/:number", h.ByTransaction)
}
