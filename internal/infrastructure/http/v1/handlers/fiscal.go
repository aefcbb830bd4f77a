package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/fiscal"
	"bakehouse/internal/infrastructure/storage/postgres"
)

// FiscalHandler manages financial years: the April-March periods that
// documents post into and that locking closes to changes.
type FiscalHandler struct {
	*BaseHandler
	years *postgres.FinancialYearRepo
}

// NewFiscalHandler creates a new financial year handler.
func NewFiscalHandler(base *BaseHandler, years *postgres.FinancialYearRepo) *FiscalHandler {
	return &FiscalHandler{BaseHandler: base, years: years}
}

// CreateFinancialYearRequest opens a new financial year.
type CreateFinancialYearRequest struct {
	YearNo int `json:"yearNo" binding:"required"`
}

// List handles GET /financial-year
func (h *FiscalHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	years, err := h.years.List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": years})
}

// Create handles POST /financial-year
func (h *FiscalHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateFinancialYearRequest
	if !h.BindJSON(c, &req) {
		return
	}

	year := fiscal.NewFinancialYear(req.YearNo)
	if err := h.years.Create(ctx, year); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, year)
}

// Get handles GET /financial-year/:yearNo
func (h *FiscalHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	yearNo, ok := h.parseYearNo(c)
	if !ok {
		return
	}

	year, err := h.years.GetByYearNo(ctx, yearNo)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, year)
}

// Lock handles POST /financial-year/:yearNo/lock - closes the year to new
// or edited postings.
func (h *FiscalHandler) Lock(c *gin.Context) {
	h.setLocked(c, true, "financial year locked")
}

// Unlock handles POST /financial-year/:yearNo/unlock
func (h *FiscalHandler) Unlock(c *gin.Context) {
	h.setLocked(c, false, "financial year unlocked")
}

func (h *FiscalHandler) setLocked(c *gin.Context, locked bool, message string) {
	ctx := c.Request.Context()

	yearNo, ok := h.parseYearNo(c)
	if !ok {
		return
	}

	year, err := h.years.GetByYearNo(ctx, yearNo)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.years.SetLocked(ctx, year.ID, locked); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, message)
}

func (h *FiscalHandler) parseYearNo(c *gin.Context) (int, bool) {
	yearNo, err := strconv.Atoi(c.Param("yearNo"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid year number"))
		return 0, false
	}
	return yearNo, true
}

// RegisterRoutes registers financial year routes.
func (h *FiscalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:yearNo", h.Get)
	rg.POST("/:yearNo/lock", h.Lock)
	rg.POST("/:yearNo/unlock", h.Unlock)
}
