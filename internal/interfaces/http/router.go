package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hiringgroup/talento-api/internal/application/auth"
	"github.com/hiringgroup/talento-api/internal/application/catalog"
	"github.com/hiringgroup/talento-api/internal/application/hiring"
	"github.com/hiringgroup/talento-api/internal/application/payroll"
	"github.com/hiringgroup/talento-api/internal/application/pipeline"
	"github.com/hiringgroup/talento-api/internal/application/posting"
	"github.com/hiringgroup/talento-api/internal/application/profile"
	"github.com/hiringgroup/talento-api/internal/application/report"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	PostingUC     *posting.PostingUseCase
	ApplicationUC *pipeline.ApplicationUseCase
	HireUC        *hiring.HireUseCase
	PayrollUC     *payroll.PayrollUseCase
	ReportUC      *report.ReportUseCase
	CatalogUC     *catalog.CatalogUseCase
	ProfileUC     *profile.ProfileUseCase
	JWTSecret     string
}

// Router registra las rutas de la API con su RBAC por rol efectivo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogos: lectura pública (el formulario de registro necesita
	// universidades y bancos antes de tener sesión), mutación solo admin.
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalogs/:key", catalogHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	soloEmpresa := RequireRole(entity.AccountEmpresa)
	soloAdmin := RequireRole(entity.AccountHiringGroup)
	soloPostulante := RequireRole(entity.AccountPostulante, entity.RoleContratado)
	soloContratado := RequireRole(entity.RoleContratado)

	// Vacantes: búsqueda para cualquier sesión, mutación solo empresa
	postingHandler := NewPostingHandler(deps.PostingUC)
	protected.Get("/postings", postingHandler.ListActive)
	protected.Get("/postings/mine", soloEmpresa, postingHandler.ListMine)
	protected.Post("/postings", soloEmpresa, postingHandler.Create)
	protected.Put("/postings/:id", soloEmpresa, postingHandler.Update)
	protected.Delete("/postings/:id", soloEmpresa, postingHandler.Delete)

	// Postulaciones: alta y seguimiento del postulante, gestión del operador
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	protected.Post("/applications", soloPostulante, applicationHandler.Apply)
	protected.Get("/applications/mine", soloPostulante, applicationHandler.ListMine)
	protected.Get("/applications/hireable", soloAdmin, applicationHandler.ListHireable)
	protected.Patch("/applications/:id/review", soloAdmin, applicationHandler.MarkUnderReview)
	protected.Patch("/applications/:id/reject", soloAdmin, applicationHandler.Reject)

	// Contratación (solo hiring_group)
	hiringHandler := NewHiringHandler(deps.HireUC)
	protected.Post("/contracts", soloAdmin, hiringHandler.Hire)
	protected.Patch("/contracts/:id/terminate", soloAdmin, hiringHandler.Terminate)

	// Nómina (solo hiring_group)
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	protected.Post("/payrolls", soloAdmin, payrollHandler.Run)

	// Reportes: la empresa consulta su nómina; los totales son del operador
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/payroll", RequireRole(entity.AccountEmpresa, entity.AccountHiringGroup), reportHandler.PayrollByPeriod)
	protected.Get("/reports/payroll-totals", soloAdmin, reportHandler.PayrollTotals)

	// Vista del contratado: recibos y constancia
	protected.Get("/me/receipts", soloContratado, reportHandler.MyReceipts)
	protected.Get("/me/employment-certificate", soloContratado, reportHandler.MyCertificate)
	protected.Get("/me/employment-certificate/pdf", soloContratado, reportHandler.MyCertificatePDF)

	// Perfil propio y experiencia laboral
	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Put("/me/profile", profileHandler.UpdateMe)
	protected.Post("/me/experiences", soloPostulante, profileHandler.AddExperience)
	protected.Get("/me/experiences", soloPostulante, profileHandler.ListExperience)
	protected.Delete("/me/experiences/:id", soloPostulante, profileHandler.DeleteExperience)

	// Administración de cuentas y catálogos (solo hiring_group)
	protected.Get("/admin/accounts", soloAdmin, profileHandler.ListAccounts)
	protected.Get("/admin/companies", soloAdmin, profileHandler.ListCompanies)
	protected.Delete("/admin/accounts/:id", soloAdmin, profileHandler.DeleteAccount)
	protected.Post("/catalogs/:key", soloAdmin, catalogHandler.Create)
	protected.Put("/catalogs/:key/:id", soloAdmin, catalogHandler.Rename)
	protected.Delete("/catalogs/:key/:id", soloAdmin, catalogHandler.Delete)
}
