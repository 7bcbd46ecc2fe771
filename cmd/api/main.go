package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/facturadom/factura-rd/internal/application/auth"
	"github.com/facturadom/factura-rd/internal/application/billing"
	"github.com/facturadom/factura-rd/internal/application/company"
	appinsights "github.com/facturadom/factura-rd/internal/application/insights"
	domaininsights "github.com/facturadom/factura-rd/internal/domain/insights"
	"github.com/facturadom/factura-rd/internal/infrastructure/postgres"
	httpRouter "github.com/facturadom/factura-rd/internal/interfaces/http"
	"github.com/facturadom/factura-rd/pkg/config"
	"github.com/facturadom/factura-rd/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	sequenceRepo := postgres.NewNCFSequenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine, err := domaininsights.NewEngine(insightsConfig(cfg.Insights))
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del motor de insights")
	}
	insightsUC := appinsights.NewUseCase(invoiceRepo, sequenceRepo, engine)

	companyUC := company.NewUseCase(companyRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner)
	listInvoicesUC := billing.NewListInvoicesUseCase(invoiceRepo)
	sequenceUC := billing.NewSequenceUseCase(sequenceRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Factura RD API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		CustomerUC:    customerUC,
		CreateInvoice: createInvoiceUC,
		ListInvoices:  listInvoicesUC,
		SequenceUC:    sequenceUC,
		InsightsUC:    insightsUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// insightsConfig parte de los defaults del motor y aplica solo los umbrales
// definidos por entorno (cero = sin override).
func insightsConfig(in config.InsightsConfig) domaininsights.Config {
	cfg := domaininsights.DefaultConfig()
	if in.LowSequenceThreshold > 0 {
		cfg.LowSequenceThreshold = int64(in.LowSequenceThreshold)
	}
	if in.ExpiryWarningDays > 0 {
		cfg.ExpiryWarningDays = in.ExpiryWarningDays
	}
	if in.GraceDays > 0 {
		cfg.GraceDays = in.GraceDays
	}
	if in.ConcentrationPct > 0 {
		cfg.ConcentrationPct = in.ConcentrationPct
	}
	if in.MaxAlerts > 0 {
		cfg.MaxAlerts = in.MaxAlerts
	}
	return cfg
}
