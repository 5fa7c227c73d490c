package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de contrato.
const (
	ContractUnMes      = "un_mes"
	ContractSeisMeses  = "seis_meses"
	ContractUnAnio     = "un_anio"
	ContractIndefinido = "indefinido"
)

// Estados de un contrato.
const (
	ContractActivo   = "activo"
	ContractInactivo = "inactivo"
)

// Contract se crea desde exactamente una postulación aceptada (1:1).
// Los campos extendidos (sangre, emergencia, cuenta bancaria) son obligatorios
// al momento de contratar.
type Contract struct {
	ID                    string
	ApplicationID         string
	Salary                decimal.Decimal // siempre > 0
	ContractType          string          // un_mes, seis_meses, un_anio, indefinido
	StartDate             time.Time
	Status                string // activo, inactivo
	BloodType             string
	EmergencyContactName  string
	EmergencyContactPhone string
	BankAccountNumber     string
	BankID                string
}

// ValidContractType indica si el tipo pertenece al conjunto cerrado.
func ValidContractType(t string) bool {
	switch t {
	case ContractUnMes, ContractSeisMeses, ContractUnAnio, ContractIndefinido:
		return true
	}
	return false
}

// ActiveContract proyección de nómina: contrato activo con su salario,
// alcanzado vía postulación -> vacante -> empresa.
type ActiveContract struct {
	ContractID string
	Salary     decimal.Decimal
}
