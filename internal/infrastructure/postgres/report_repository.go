package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo proyecciones de solo lectura sobre nómina y contratación.
// No muta nada; siempre se usa con el pool.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// PayrollByCompanyPeriod desglose por empleado de la nómina de una empresa en un periodo.
func (r *ReportRepo) PayrollByCompanyPeriod(companyID string, month, year int) ([]*entity.PayrollEmployeeRow, error) {
	query := `
		SELECT ap.first_name || ' ' || ap.last_name, ap.national_id, rc.base_salary, rc.net_salary
		FROM receipts rc
		JOIN payroll_runs pr ON pr.id = rc.payroll_run_id
		JOIN contracts c ON c.id = rc.contract_id
		JOIN applications a ON a.id = c.application_id
		JOIN applicant_profiles ap ON ap.account_id = a.applicant_id
		WHERE pr.company_id = $1 AND pr.month = $2 AND pr.year = $3
		ORDER BY ap.last_name, ap.first_name`
	rows, err := r.q.Query(context.Background(), query, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("payroll by period: %w", err)
	}
	defer rows.Close()

	var out []*entity.PayrollEmployeeRow
	for rows.Next() {
		var e entity.PayrollEmployeeRow
		if err := rows.Scan(&e.EmployeeName, &e.NationalID, &e.BaseSalary, &e.NetSalary); err != nil {
			return nil, fmt.Errorf("scan payroll employee row: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// PayrollTotals total neto de cada nómina histórica, todas las empresas.
func (r *ReportRepo) PayrollTotals() ([]*entity.PayrollTotalRow, error) {
	query := `
		SELECT cp.legal_name, pr.month, pr.year, COALESCE(SUM(rc.net_salary), 0)
		FROM payroll_runs pr
		JOIN company_profiles cp ON cp.account_id = pr.company_id
		LEFT JOIN receipts rc ON rc.payroll_run_id = pr.id
		GROUP BY cp.legal_name, pr.month, pr.year
		ORDER BY pr.year DESC, pr.month DESC, cp.legal_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("payroll totals: %w", err)
	}
	defer rows.Close()

	var out []*entity.PayrollTotalRow
	for rows.Next() {
		var t entity.PayrollTotalRow
		if err := rows.Scan(&t.CompanyName, &t.Month, &t.Year, &t.Total); err != nil {
			return nil, fmt.Errorf("scan payroll total row: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// ReceiptsByApplicant recibos del contratado, filtrables por mes y año (nil = sin filtro).
func (r *ReportRepo) ReceiptsByApplicant(applicantID string, month, year *int) ([]*entity.ReceiptRow, error) {
	query := `
		SELECT pr.month, pr.year, rc.payment_date, rc.base_salary, rc.net_salary
		FROM receipts rc
		JOIN payroll_runs pr ON pr.id = rc.payroll_run_id
		JOIN contracts c ON c.id = rc.contract_id
		JOIN applications a ON a.id = c.application_id
		WHERE a.applicant_id = $1
			AND ($2::int IS NULL OR pr.month = $2)
			AND ($3::int IS NULL OR pr.year = $3)
		ORDER BY pr.year DESC, pr.month DESC`
	rows, err := r.q.Query(context.Background(), query, applicantID, month, year)
	if err != nil {
		return nil, fmt.Errorf("receipts by applicant: %w", err)
	}
	defer rows.Close()

	var out []*entity.ReceiptRow
	for rows.Next() {
		var rr entity.ReceiptRow
		if err := rows.Scan(&rr.Month, &rr.Year, &rr.PaymentDate, &rr.BaseSalary, &rr.NetSalary); err != nil {
			return nil, fmt.Errorf("scan receipt row: %w", err)
		}
		out = append(out, &rr)
	}
	return out, rows.Err()
}

// EmploymentCertificate datos de la constancia para el contrato activo del
// postulante. Sin contrato activo retorna nil.
func (r *ReportRepo) EmploymentCertificate(applicantID string) (*entity.EmploymentCertificate, error) {
	query := `
		SELECT ap.first_name || ' ' || ap.last_name, p.title, cp.legal_name, c.salary, c.start_date
		FROM contracts c
		JOIN applications a ON a.id = c.application_id
		JOIN applicant_profiles ap ON ap.account_id = a.applicant_id
		JOIN job_postings p ON p.id = a.posting_id
		JOIN company_profiles cp ON cp.account_id = p.company_id
		WHERE a.applicant_id = $1 AND c.status = 'activo'
		ORDER BY c.start_date DESC
		LIMIT 1`
	var cert entity.EmploymentCertificate
	err := r.q.QueryRow(context.Background(), query, applicantID).Scan(
		&cert.EmployeeName, &cert.PositionName, &cert.CompanyName, &cert.Salary, &cert.HiredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("employment certificate: %w", err)
	}
	return &cert, nil
}
