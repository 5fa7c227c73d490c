package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiringgroup/talento-api/internal/application/auth"
	"github.com/hiringgroup/talento-api/internal/application/hiring"
	"github.com/hiringgroup/talento-api/internal/application/payroll"
	"github.com/hiringgroup/talento-api/internal/application/profile"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

var _ auth.TxRunner = (*TxRunner)(nil)
var _ profile.TxRunner = (*TxRunner)(nil)
var _ hiring.TxRunner = (*TxRunner)(nil)
var _ payroll.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistration transacción de registro y edición de perfil: cuenta y perfil
// se insertan o actualizan juntos, o ninguno.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	accounts repository.AccountRepository,
	applicants repository.ApplicantProfileRepository,
	companies repository.CompanyProfileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAccountRepository(tx), NewApplicantProfileRepository(tx), NewCompanyProfileRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAccountDeletion transacción de eliminación de cuenta: la cascada
// (experiencias, perfil, cuenta) se aplica completa o se revierte completa.
func (r *TxRunner) RunAccountDeletion(ctx context.Context, fn func(
	accounts repository.AccountRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAccountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunHiring transacción de contratación: crear contrato, cerrar vacante y
// aceptar postulación como una sola unidad.
func (r *TxRunner) RunHiring(ctx context.Context, fn func(
	applications repository.ApplicationRepository,
	postings repository.PostingRepository,
	contracts repository.ContractRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewApplicationRepository(tx), NewPostingRepository(tx), NewContractRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayroll transacción de nómina: la cabecera y todos sus recibos, o nada.
func (r *TxRunner) RunPayroll(ctx context.Context, fn func(
	payrolls repository.PayrollRepository,
	contracts repository.ContractRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPayrollRepository(tx), NewContractRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
