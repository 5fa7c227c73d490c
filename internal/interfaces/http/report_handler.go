package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/report"
)

// ReportHandler maneja reportes de nómina y la constancia de trabajo.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PayrollByPeriod godoc
// @Summary      Desglose por empleado de la nómina de una empresa en un periodo
// @Tags         reports
// @Produce      json
// @Param        company_id  query  string  true  "empresa"
// @Param        month       query  int     true  "1-12"
// @Param        year        query  int     true  "2000-2100"
// @Success      200  {array}  dto.PayrollEmployeeRowResponse
// @Router       /api/reports/payroll [get]
func (h *ReportHandler) PayrollByPeriod(c *fiber.Ctx) error {
	month, err1 := strconv.Atoi(c.Query("month"))
	year, err2 := strconv.Atoi(c.Query("year"))
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month y year deben ser numéricos"})
	}
	out, err := h.uc.PayrollByCompanyPeriod(c.Query("company_id"), month, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PayrollTotals godoc
// @Summary      Total de cada nómina histórica, todas las empresas
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.PayrollTotalRowResponse
// @Router       /api/reports/payroll-totals [get]
func (h *ReportHandler) PayrollTotals(c *fiber.Ctx) error {
	out, err := h.uc.PayrollTotals()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MyReceipts godoc
// @Summary      Recibos de pago del contratado autenticado
// @Tags         reports
// @Produce      json
// @Param        month  query  int  false  "filtrar por mes"
// @Param        year   query  int  false  "filtrar por año"
// @Success      200  {array}  dto.ReceiptRowResponse
// @Router       /api/me/receipts [get]
func (h *ReportHandler) MyReceipts(c *fiber.Ctx) error {
	month, err := optionalInt(c.Query("month"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe ser numérico"})
	}
	year, err := optionalInt(c.Query("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year debe ser numérico"})
	}
	out, err := h.uc.ReceiptsByApplicant(GetAccountID(c), month, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MyCertificate godoc
// @Summary      Datos de la constancia de trabajo del contrato activo
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.EmploymentCertificateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/employment-certificate [get]
func (h *ReportHandler) MyCertificate(c *fiber.Ctx) error {
	out, err := h.uc.EmploymentCertificate(GetAccountID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MyCertificatePDF godoc
// @Summary      Constancia de trabajo en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/employment-certificate/pdf [get]
func (h *ReportHandler) MyCertificatePDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.EmploymentCertificatePDF(c.UserContext(), GetAccountID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="constancia-de-trabajo.pdf"`)
	return c.Send(pdfBytes)
}

// optionalInt parsea un query param numérico opcional ("" = nil).
func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
