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

	"github.com/hiringgroup/talento-api/internal/application/auth"
	"github.com/hiringgroup/talento-api/internal/application/catalog"
	"github.com/hiringgroup/talento-api/internal/application/hiring"
	"github.com/hiringgroup/talento-api/internal/application/payroll"
	"github.com/hiringgroup/talento-api/internal/application/pipeline"
	"github.com/hiringgroup/talento-api/internal/application/posting"
	"github.com/hiringgroup/talento-api/internal/application/profile"
	"github.com/hiringgroup/talento-api/internal/application/report"
	infrapdf "github.com/hiringgroup/talento-api/internal/infrastructure/pdf"
	"github.com/hiringgroup/talento-api/internal/infrastructure/postgres"
	httpRouter "github.com/hiringgroup/talento-api/internal/interfaces/http"
	"github.com/hiringgroup/talento-api/pkg/config"
	"github.com/hiringgroup/talento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	applicantRepo := postgres.NewApplicantProfileRepository(pool)
	companyRepo := postgres.NewCompanyProfileRepository(pool)
	postingRepo := postgres.NewPostingRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	experienceRepo := postgres.NewWorkExperienceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	authUC := auth.NewAuthUseCase(txRunner, accountRepo, contractRepo, catalogRepo, jwtCfg)
	postingUC := posting.NewPostingUseCase(postingRepo, catalogRepo)
	applicationUC := pipeline.NewApplicationUseCase(applicationRepo, postingRepo)
	hireUC := hiring.NewHireUseCase(txRunner, applicationRepo, contractRepo, catalogRepo)
	payrollUC := payroll.NewPayrollUseCase(txRunner, companyRepo)
	catalogUC := catalog.NewCatalogUseCase(catalogRepo)
	profileUC := profile.NewProfileUseCase(txRunner, accountRepo, applicantRepo, companyRepo, experienceRepo, catalogRepo)

	// PDF: constancia de trabajo
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewReportUseCase(reportRepo, pdfGenerator)

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
		Title:    "Talento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		PostingUC:     postingUC,
		ApplicationUC: applicationUC,
		HireUC:        hireUC,
		PayrollUC:     payrollUC,
		ReportUC:      reportUC,
		CatalogUC:     catalogUC,
		ProfileUC:     profileUC,
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
