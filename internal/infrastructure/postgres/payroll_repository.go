package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implementación del puerto PayrollRepository sobre PostgreSQL (usable con pool o tx).
type PayrollRepo struct {
	q Querier
}

// NewPayrollRepository construye el adaptador de persistencia para nóminas. Pasar pool o tx (Querier).
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{q: q}
}

// CreateRun inserta la cabecera de la nómina. El constraint único sobre
// (company, month, year) retorna ErrDuplicatePayrollPeriod, también bajo carrera.
func (r *PayrollRepo) CreateRun(run *entity.PayrollRun) error {
	query := `
		INSERT INTO payroll_runs (id, company_id, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		run.ID, run.CompanyID, run.Month, run.Year, run.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePayrollPeriod
		}
		return fmt.Errorf("insert payroll run: %w", err)
	}
	return nil
}

// GetRun obtiene la nómina de una empresa para un periodo.
func (r *PayrollRepo) GetRun(companyID string, month, year int) (*entity.PayrollRun, error) {
	query := `
		SELECT id, company_id, month, year, created_at
		FROM payroll_runs WHERE company_id = $1 AND month = $2 AND year = $3`
	var run entity.PayrollRun
	err := r.q.QueryRow(context.Background(), query, companyID, month, year).Scan(
		&run.ID, &run.CompanyID, &run.Month, &run.Year, &run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll run: %w", err)
	}
	return &run, nil
}

// CreateReceipt inserta un recibo de la nómina.
func (r *PayrollRepo) CreateReceipt(rc *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, payroll_run_id, contract_id, base_salary, ivss_deduction, inces_deduction, agency_commission, net_salary, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rc.ID, rc.PayrollRunID, rc.ContractID, rc.BaseSalary, rc.IVSSDeduction,
		rc.INCESDeduction, rc.AgencyCommission, rc.NetSalary, rc.PaymentDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// ListReceiptsByRun recibos de una nómina.
func (r *PayrollRepo) ListReceiptsByRun(runID string) ([]*entity.Receipt, error) {
	query := `
		SELECT id, payroll_run_id, contract_id, base_salary, ivss_deduction, inces_deduction, agency_commission, net_salary, payment_date
		FROM receipts WHERE payroll_run_id = $1 ORDER BY payment_date`
	rows, err := r.q.Query(context.Background(), query, runID)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Receipt
	for rows.Next() {
		var rc entity.Receipt
		if err := rows.Scan(&rc.ID, &rc.PayrollRunID, &rc.ContractID, &rc.BaseSalary, &rc.IVSSDeduction, &rc.INCESDeduction, &rc.AgencyCommission, &rc.NetSalary, &rc.PaymentDate); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		out = append(out, &rc)
	}
	return out, rows.Err()
}
