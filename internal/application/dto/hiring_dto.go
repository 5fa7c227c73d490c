package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HireRequest detalles del contrato al aceptar una postulación. Todos los
// campos extendidos son obligatorios.
type HireRequest struct {
	ApplicationID         string          `json:"application_id" validate:"required"`
	Salary                decimal.Decimal `json:"salary" validate:"required"`
	ContractType          string          `json:"contract_type" validate:"required,oneof=un_mes seis_meses un_anio indefinido"`
	BloodType             string          `json:"blood_type" validate:"required"`
	EmergencyContactName  string          `json:"emergency_contact_name" validate:"required"`
	EmergencyContactPhone string          `json:"emergency_contact_phone" validate:"required"`
	BankAccountNumber     string          `json:"bank_account_number" validate:"required"`
	BankID                string          `json:"bank_id" validate:"required"`
}

// ContractResponse contrato creado por la contratación.
type ContractResponse struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	Salary        decimal.Decimal `json:"salary"`
	ContractType  string          `json:"contract_type"`
	StartDate     time.Time       `json:"start_date"`
	Status        string          `json:"status"`
}
