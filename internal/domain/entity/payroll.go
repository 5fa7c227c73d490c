package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRun una ejecución de nómina para una empresa en un periodo.
// La tripleta (company, month, year) es única: un periodo jamás se factura dos veces.
type PayrollRun struct {
	ID        string
	CompanyID string
	Month     int // 1-12
	Year      int
	CreatedAt time.Time
}

// Receipt recibo de pago de un contrato dentro de una nómina.
// Exactamente uno por (payroll_run, contract). La comisión de la agencia es
// informativa: no se descuenta del neto del empleado.
type Receipt struct {
	ID               string
	PayrollRunID     string
	ContractID       string
	BaseSalary       decimal.Decimal
	IVSSDeduction    decimal.Decimal // seguro social, 1% del base
	INCESDeduction   decimal.Decimal // aporte de formación, 0.5% del base
	AgencyCommission decimal.Decimal // 2% del base, solo reporte
	NetSalary        decimal.Decimal // base - IVSS - INCES
	PaymentDate      time.Time
}
