// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/catalogs/account"
	"bakehouse/internal/domain/catalogs/item"
	"bakehouse/internal/domain/catalogs/location"
	"bakehouse/internal/domain/catalogs/voucher"
	"bakehouse/internal/domain/documents/adjustment"
	"bakehouse/internal/domain/documents/journal"
	"bakehouse/internal/domain/documents/kitchenissue"
	"bakehouse/internal/domain/documents/kitchenproduction"
	"bakehouse/internal/domain/documents/order"
	"bakehouse/internal/domain/documents/purchase"
	"bakehouse/internal/domain/documents/sale"
	"bakehouse/internal/domain/posting"
	"bakehouse/internal/domain/registers/ledger"
	"bakehouse/internal/domain/registers/stock"
	"bakehouse/internal/infrastructure/http/v1/handlers"
	"bakehouse/internal/infrastructure/http/v1/middleware"
	"bakehouse/internal/infrastructure/notify"
	"bakehouse/internal/infrastructure/storage/postgres"
	"bakehouse/internal/infrastructure/storage/postgres/catalog_repo"
	"bakehouse/internal/infrastructure/storage/postgres/document_repo"
	"bakehouse/internal/infrastructure/storage/postgres/register_repo"
	"bakehouse/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs repository work in transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// NotifyURL is the optional webhook for posted/deleted document events
	NotifyURL string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		deps := buildDependencies(cfg)

		registerCatalogRoutes(v1, deps)
		registerDocumentRoutes(v1, deps)
		registerRegisterRoutes(v1, deps)
		registerSystemRoutes(v1, deps)
	}

	return router
}

// dependencies holds the shared service graph behind the API.
type dependencies struct {
	txManager *postgres.TxManager
	audit     *postgres.AuditService
	years     *postgres.FinancialYearRepo

	engine *posting.Engine

	locations    *location.Service
	items        *item.Service
	accounts     *account.Service
	voucherTypes *voucher.Service

	stockSvc  *stock.Service
	ledgerSvc *ledger.Service
}

// buildDependencies wires repositories, services, and the posting engine.
func buildDependencies(cfg RouterConfig) *dependencies {
	txManager := cfg.TxManager

	auditSvc, err := postgres.NewAuditService(txManager)
	if err != nil {
		// Compression setup only fails on invalid options, which is a
		// programming error.
		panic(err)
	}

	years := postgres.NewFinancialYearRepo(txManager)
	sequences := postgres.NewSequenceService(txManager)

	stockSvc := stock.NewService(register_repo.NewStockRepo(txManager))
	ledgerSvc := ledger.NewService(register_repo.NewLedgerRepo(txManager), years)

	engine := posting.NewEngine(txManager, sequences, stockSvc, ledgerSvc, years, auditSvc)

	notifier := notify.New(cfg.NotifyURL)
	if notifier.Enabled() {
		engine.OnAfterSave(notifier.DocumentSaved())
		engine.OnAfterDelete(notifier.DocumentDeleted())
	}

	return &dependencies{
		txManager:    txManager,
		audit:        auditSvc,
		years:        years,
		engine:       engine,
		locations:    location.NewService(catalog_repo.NewLocationRepo(txManager), txManager),
		items:        item.NewService(catalog_repo.NewItemRepo(txManager), txManager),
		accounts:     account.NewService(catalog_repo.NewAccountRepo(txManager), txManager),
		voucherTypes: voucher.NewService(catalog_repo.NewVoucherTypeRepo(txManager), txManager),
		stockSvc:     stockSvc,
		ledgerSvc:    ledgerSvc,
	}
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, deps *dependencies) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- LOCATIONS ---
	{
		handler := handlers.NewLocationHandler(baseHandler, deps.locations)
		handler.RegisterRoutes(catalogs.Group("/location"))
	}

	// --- ITEMS ---
	{
		handler := handlers.NewItemHandler(baseHandler, deps.items)
		handler.RegisterRoutes(catalogs.Group("/item"))
	}

	// --- LEDGER ACCOUNTS ---
	{
		handler := handlers.NewAccountHandler(baseHandler, deps.accounts)
		handler.RegisterRoutes(catalogs.Group("/account"))
	}

	// --- VOUCHER TYPES ---
	{
		handler := handlers.NewVoucherTypeHandler(baseHandler, deps.voucherTypes)
		handler.RegisterRoutes(catalogs.Group("/voucher-type"))
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, deps *dependencies) {
	docsGroup := rg.Group("/document")
	docHandler := handlers.NewDocumentHandler(handlers.NewBaseHandler())
	txManager := deps.txManager

	// --- PURCHASE ---
	{
		repo := document_repo.NewPurchaseRepo(txManager)
		service := purchase.NewService(repo, deps.engine, deps.locations)
		handler := handlers.NewPurchaseHandler(docHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/purchase"))
	}

	// --- KITCHEN ISSUE ---
	{
		repo := document_repo.NewKitchenIssueRepo(txManager)
		service := kitchenissue.NewService(repo, deps.engine, deps.locations)
		handler := handlers.NewKitchenIssueHandler(docHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/kitchen-issue"))
	}

	// --- KITCHEN PRODUCTION ---
	{
		repo := document_repo.NewKitchenProductionRepo(txManager)
		service := kitchenproduction.NewService(repo, deps.engine, deps.locations)
		handler := handlers.NewKitchenProductionHandler(docHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/kitchen-production"))
	}

	// --- SALE (and sale return) ---
	{
		repo := document_repo.NewSaleRepo(txManager)
		service := sale.NewService(repo, deps.engine, deps.locations)
		handler := handlers.NewSaleHandler(docHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/sale"))
	}

	// --- ORDER ---
	{
		repo := document_repo.NewOrderRepo(txManager)
		service := order.NewService(repo, deps.engine, deps.locations)
		handler := handlers.NewOrderHandler(docHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/order"))
	}

	// --- STOCK ADJUSTMENT ---
	{
		repo := document_repo.NewAdjustmentRepo(txManager)
		service := adjustment.NewService(repo, deps.engine, deps.locations)
		handler := handlers.NewAdjustmentHandler(docHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/stock-adjustment"))
	}

	// --- JOURNAL VOUCHER ---
	{
		repo := document_repo.NewJournalRepo(txManager)
		service := journal.NewService(repo, deps.engine, deps.voucherTypes, deps.ledgerSvc)
		handler := handlers.NewJournalHandler(docHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/journal-voucher"))
	}
}

// registerRegisterRoutes registers stock and accounting register endpoints.
func registerRegisterRoutes(rg *gin.RouterGroup, deps *dependencies) {
	registers := rg.Group("/register")
	docHandler := handlers.NewDocumentHandler(handlers.NewBaseHandler())

	// Stock register
	{
		handler := handlers.NewStockHandler(docHandler, deps.stockSvc)
		handler.RegisterRoutes(registers.Group("/stock"))
	}

	// Accounting register
	{
		handler := handlers.NewLedgerHandler(docHandler, deps.ledgerSvc)
		handler.RegisterRoutes(registers.Group("/ledger"))
	}
}

// registerSystemRoutes registers financial year and audit endpoints.
func registerSystemRoutes(rg *gin.RouterGroup, deps *dependencies) {
	baseHandler := handlers.NewBaseHandler()

	fiscalHandler := handlers.NewFiscalHandler(baseHandler, deps.years)
	fiscalHandler.RegisterRoutes(rg.Group("/financial-year"))

	auditHandler := handlers.NewAuditHandler(baseHandler, deps.audit)
	auditHandler.RegisterRoutes(rg.Group("/audit"))
}
