package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/facturadom/factura-rd/internal/application/auth"
	"github.com/facturadom/factura-rd/internal/application/billing"
	"github.com/facturadom/factura-rd/internal/application/company"
	appinsights "github.com/facturadom/factura-rd/internal/application/insights"
	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *company.UseCase
	CustomerUC    *billing.CustomerUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	ListInvoices  *billing.ListInvoicesUseCase
	SequenceUC    *billing.SequenceUseCase
	InsightsUC    *appinsights.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: alta de empresa antes del primer usuario)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Insights (protegido)
	insightsHandler := NewInsightsHandler(deps.InsightsUC)
	protected.Get("/insights", insightsHandler.GetReport)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.ListInvoices)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)

	// Secuencias NCF (protegido; crear requiere admin o contador)
	sequences := protected.Group("/ncf-sequences")
	ncfHandler := NewNCFHandler(deps.SequenceUC)
	sequences.Get("/", ncfHandler.List)
	sequences.Post("/", RequireRole(entity.RoleAdmin, entity.RoleContador), ncfHandler.Create)
}
