package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// ReportRepository proyecciones de solo lectura sobre nómina y contratación.
type ReportRepository interface {
	PayrollByCompanyPeriod(companyID string, month, year int) ([]*entity.PayrollEmployeeRow, error)
	// PayrollTotals total por nómina, para todas las empresas y periodos.
	PayrollTotals() ([]*entity.PayrollTotalRow, error)
	// ReceiptsByApplicant recibos del contratado, filtrables por mes/año (nil = sin filtro).
	ReceiptsByApplicant(applicantID string, month, year *int) ([]*entity.ReceiptRow, error)
	// EmploymentCertificate datos de la constancia para el contrato activo del
	// postulante. Retorna domain.ErrNotFound si no hay contrato activo.
	EmploymentCertificate(applicantID string) (*entity.EmploymentCertificate, error)
}
