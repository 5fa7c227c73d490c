// Package payroll ejecuta la nómina mensual de una empresa: una sola vez por
// (empresa, mes, año), un recibo por contrato activo, todo dentro de una
// transacción.
package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	domainpayroll "github.com/hiringgroup/talento-api/internal/domain/payroll"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// TxRunner ejecuta la generación de nómina dentro de una transacción.
type TxRunner interface {
	RunPayroll(ctx context.Context, fn func(
		payrolls repository.PayrollRepository,
		contracts repository.ContractRepository,
	) error) error
}

// PayrollUseCase generación de nóminas.
type PayrollUseCase struct {
	txRunner    TxRunner
	companyRepo repository.CompanyProfileRepository
}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase(txRunner TxRunner, companyRepo repository.CompanyProfileRepository) *PayrollUseCase {
	return &PayrollUseCase{txRunner: txRunner, companyRepo: companyRepo}
}

// Run genera la nómina de la empresa para el periodo:
//
//  1. Inserta la nómina; el constraint único sobre (empresa, mes, año) hace la
//     prevención de duplicados a prueba de carreras (no un SELECT previo).
//  2. Reúne los contratos activos alcanzables vía postulación -> vacante.
//     Si no hay ninguno, falla y el rollback elimina la nómina recién creada.
//  3. Calcula cada recibo con aritmética decimal exacta e inserta uno por
//     contrato, fecha de pago = hoy.
//
// Todo dentro de una transacción: jamás queda una nómina con un subconjunto
// parcial de sus recibos.
func (uc *PayrollUseCase) Run(ctx context.Context, in dto.RunPayrollRequest) (*dto.PayrollRunResponse, error) {
	if in.CompanyID == "" || in.Month < 1 || in.Month > 12 || in.Year < 2000 || in.Year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByAccountID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	run := &entity.PayrollRun{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		Month:     in.Month,
		Year:      in.Year,
		CreatedAt: time.Now(),
	}
	var receipts []*entity.Receipt

	err = uc.txRunner.RunPayroll(ctx, func(
		payrolls repository.PayrollRepository,
		contracts repository.ContractRepository,
	) error {
		if err := payrolls.CreateRun(run); err != nil {
			return err
		}
		activos, err := contracts.ListActiveByCompany(in.CompanyID)
		if err != nil {
			return err
		}
		if len(activos) == 0 {
			return domain.ErrNoActiveEmployees
		}

		hoy := time.Now()
		receipts = make([]*entity.Receipt, 0, len(activos))
		for _, c := range activos {
			b := domainpayroll.Calculate(c.Salary)
			rc := &entity.Receipt{
				ID:               uuid.New().String(),
				PayrollRunID:     run.ID,
				ContractID:       c.ContractID,
				BaseSalary:       b.BaseSalary,
				IVSSDeduction:    b.IVSSDeduction,
				INCESDeduction:   b.INCESDeduction,
				AgencyCommission: b.AgencyCommission,
				NetSalary:        b.NetSalary,
				PaymentDate:      hoy,
			}
			if err := payrolls.CreateReceipt(rc); err != nil {
				return err
			}
			receipts = append(receipts, rc)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePayrollPeriod) || errors.Is(err, domain.ErrNoActiveEmployees) {
			return nil, err
		}
		return nil, fmt.Errorf("generar nómina: %w", err)
	}

	out := &dto.PayrollRunResponse{
		ID:            run.ID,
		CompanyID:     run.CompanyID,
		Month:         run.Month,
		Year:          run.Year,
		ReceiptsCount: len(receipts),
		Receipts:      make([]dto.ReceiptResponse, 0, len(receipts)),
	}
	for _, rc := range receipts {
		out.Receipts = append(out.Receipts, dto.ReceiptResponse{
			ID:               rc.ID,
			ContractID:       rc.ContractID,
			BaseSalary:       rc.BaseSalary,
			IVSSDeduction:    rc.IVSSDeduction,
			INCESDeduction:   rc.INCESDeduction,
			AgencyCommission: rc.AgencyCommission,
			NetSalary:        rc.NetSalary,
			PaymentDate:      rc.PaymentDate,
		})
	}
	return out, nil
}
