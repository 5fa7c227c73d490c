// Package hiring convierte una postulación aceptada en un contrato. Es el
// pivote del flujo: contrato insertado, vacante cerrada y postulación aceptada
// son visibles juntos o no lo es ninguno.
package hiring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// TxRunner ejecuta la contratación dentro de una transacción, con repos atados
// a la tx.
type TxRunner interface {
	RunHiring(ctx context.Context, fn func(
		applications repository.ApplicationRepository,
		postings repository.PostingRepository,
		contracts repository.ContractRepository,
	) error) error
}

// HireUseCase contratación y terminación de contratos.
type HireUseCase struct {
	txRunner        TxRunner
	applicationRepo repository.ApplicationRepository
	contractRepo    repository.ContractRepository
	catalogRepo     repository.CatalogRepository
}

// NewHireUseCase construye el caso de uso.
func NewHireUseCase(
	txRunner TxRunner,
	applicationRepo repository.ApplicationRepository,
	contractRepo repository.ContractRepository,
	catalogRepo repository.CatalogRepository,
) *HireUseCase {
	return &HireUseCase{
		txRunner:        txRunner,
		applicationRepo: applicationRepo,
		contractRepo:    contractRepo,
		catalogRepo:     catalogRepo,
	}
}

// Hire valida los detalles del contrato y ejecuta en una sola transacción:
//
//  1. Insertar el contrato (activo, inicio = hoy) ligado a la postulación.
//  2. Cerrar la vacante resuelta vía la postulación.
//  3. Marcar la postulación como aceptada.
//
// Cualquier falla revierte todo y se reporta con su causa. Las demás
// postulaciones de la vacante no se tocan: la vacante cerrada impide nuevas
// contrataciones por sí sola.
func (uc *HireUseCase) Hire(ctx context.Context, in dto.HireRequest) (*dto.ContractResponse, error) {
	if in.ApplicationID == "" || !in.Salary.GreaterThan(decimal.Zero) || !entity.ValidContractType(in.ContractType) {
		return nil, domain.ErrInvalidInput
	}
	// Campos extendidos: todos obligatorios al contratar
	if in.BloodType == "" || in.EmergencyContactName == "" || in.EmergencyContactPhone == "" ||
		in.BankAccountNumber == "" || in.BankID == "" {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.catalogRepo.Exists(entity.CatalogBanks, in.BankID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	contract := &entity.Contract{
		ID:                    uuid.New().String(),
		ApplicationID:         in.ApplicationID,
		Salary:                in.Salary,
		ContractType:          in.ContractType,
		StartDate:             time.Now(),
		Status:                entity.ContractActivo,
		BloodType:             in.BloodType,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		BankAccountNumber:     in.BankAccountNumber,
		BankID:                in.BankID,
	}

	err = uc.txRunner.RunHiring(ctx, func(
		applications repository.ApplicationRepository,
		postings repository.PostingRepository,
		contracts repository.ContractRepository,
	) error {
		a, err := applications.GetByID(in.ApplicationID)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		if a.Status == entity.ApplicationAceptada || a.Status == entity.ApplicationRechazada {
			return domain.ErrConflict
		}
		if err := contracts.Create(contract); err != nil {
			return err
		}
		if err := postings.UpdateStatus(a.PostingID, entity.PostingCerrada); err != nil {
			return err
		}
		return applications.UpdateStatus(a.ID, entity.ApplicationAceptada)
	})
	if err != nil {
		// Errores de dominio pasan tal cual, aunque el storage los envuelva;
		// el resto se reporta como falla de contratación con su causa (nada
		// quedó aplicado).
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("contratar: %w", err)
	}

	return &dto.ContractResponse{
		ID:            contract.ID,
		ApplicationID: contract.ApplicationID,
		Salary:        contract.Salary,
		ContractType:  contract.ContractType,
		StartDate:     contract.StartDate,
		Status:        contract.Status,
	}, nil
}

// Terminate pasa un contrato a inactivo. El empleado deja de entrar en nóminas
// futuras y su rol efectivo vuelve a postulante en el próximo login.
func (uc *HireUseCase) Terminate(contractID string) error {
	c, err := uc.contractRepo.GetByID(contractID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if c.Status != entity.ContractActivo {
		return domain.ErrConflict
	}
	return uc.contractRepo.UpdateStatus(contractID, entity.ContractInactivo)
}
