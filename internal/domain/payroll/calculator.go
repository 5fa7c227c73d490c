// Package payroll contiene la fórmula de deducciones de nómina (servicio de dominio).
package payroll

import "github.com/shopspring/decimal"

// Tasas fijas sobre el salario base. La comisión es lo que la agencia cobra a
// la empresa; no se descuenta del neto del empleado.
var (
	rateIVSS       = decimal.RequireFromString("0.01")  // seguro social
	rateINCES      = decimal.RequireFromString("0.005") // aporte de formación
	rateCommission = decimal.RequireFromString("0.02")  // comisión de la agencia
)

// Breakdown resultado del cálculo para un salario base.
type Breakdown struct {
	BaseSalary       decimal.Decimal
	IVSSDeduction    decimal.Decimal
	INCESDeduction   decimal.Decimal
	AgencyCommission decimal.Decimal
	NetSalary        decimal.Decimal
}

// Calculate aplica la fórmula con aritmética decimal exacta, redondeada a
// 2 decimales (precisión de la unidad monetaria):
//
//	IVSS     = base * 0.01
//	INCES    = base * 0.005
//	Comisión = base * 0.02
//	Neto     = base - IVSS - INCES
func Calculate(baseSalary decimal.Decimal) Breakdown {
	ivss := baseSalary.Mul(rateIVSS).Round(2)
	inces := baseSalary.Mul(rateINCES).Round(2)
	commission := baseSalary.Mul(rateCommission).Round(2)
	net := baseSalary.Sub(ivss).Sub(inces)
	return Breakdown{
		BaseSalary:       baseSalary,
		IVSSDeduction:    ivss,
		INCESDeduction:   inces,
		AgencyCommission: commission,
		NetSalary:        net,
	}
}
