// Package report proyecciones de solo lectura sobre nómina y contratación,
// más la constancia de trabajo.
package report

import (
	"context"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// CertificatePDFGenerator renderiza la constancia de trabajo como PDF.
type CertificatePDFGenerator interface {
	GenerateCertificatePDF(ctx context.Context, cert *entity.EmploymentCertificate) ([]byte, error)
}

// ReportUseCase lecturas agregadas; sin mutaciones ni modos de falla más allá
// del error de lectura normal.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     CertificatePDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, pdfGen CertificatePDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdfGen: pdfGen}
}

// PayrollByCompanyPeriod desglose por empleado de la nómina de un periodo.
func (uc *ReportUseCase) PayrollByCompanyPeriod(companyID string, month, year int) ([]dto.PayrollEmployeeRowResponse, error) {
	if companyID == "" || month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.PayrollByCompanyPeriod(companyID, month, year)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollEmployeeRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PayrollEmployeeRowResponse{
			EmployeeName: r.EmployeeName,
			NationalID:   r.NationalID,
			BaseSalary:   r.BaseSalary,
			NetSalary:    r.NetSalary,
		})
	}
	return out, nil
}

// PayrollTotals total de cada nómina histórica, todas las empresas.
func (uc *ReportUseCase) PayrollTotals() ([]dto.PayrollTotalRowResponse, error) {
	rows, err := uc.reportRepo.PayrollTotals()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollTotalRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PayrollTotalRowResponse{
			CompanyName: r.CompanyName,
			Month:       r.Month,
			Year:        r.Year,
			Total:       r.Total,
		})
	}
	return out, nil
}

// ReceiptsByApplicant recibos del contratado, filtrables por periodo.
func (uc *ReportUseCase) ReceiptsByApplicant(applicantID string, month, year *int) ([]dto.ReceiptRowResponse, error) {
	if month != nil && (*month < 1 || *month > 12) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.ReceiptsByApplicant(applicantID, month, year)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceiptRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReceiptRowResponse{
			Month:       r.Month,
			Year:        r.Year,
			PaymentDate: r.PaymentDate,
			BaseSalary:  r.BaseSalary,
			NetSalary:   r.NetSalary,
		})
	}
	return out, nil
}

// EmploymentCertificate datos de la constancia del contrato activo.
func (uc *ReportUseCase) EmploymentCertificate(applicantID string) (*dto.EmploymentCertificateResponse, error) {
	cert, err := uc.reportRepo.EmploymentCertificate(applicantID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.EmploymentCertificateResponse{
		EmployeeName: cert.EmployeeName,
		PositionName: cert.PositionName,
		CompanyName:  cert.CompanyName,
		Salary:       cert.Salary,
		HiredAt:      cert.HiredAt,
	}, nil
}

// EmploymentCertificatePDF constancia renderizada como PDF.
func (uc *ReportUseCase) EmploymentCertificatePDF(ctx context.Context, applicantID string) ([]byte, error) {
	cert, err := uc.reportRepo.EmploymentCertificate(applicantID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateCertificatePDF(ctx, cert)
}
