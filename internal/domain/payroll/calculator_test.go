package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiringgroup/talento-api/internal/domain/payroll"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la fórmula de nómina. Propiedades que deben cumplirse a precisión de
// 2 decimales para cualquier salario válido:
//
//	Neto          = Base * 0.985
//	IVSS + INCES  = Base * 0.015
//	Comisión      = Base * 0.02 (informativa, no afecta el neto)
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_EscenarioMil(t *testing.T) {
	b := payroll.Calculate(decimal.RequireFromString("1000.00"))

	assert.True(t, b.IVSSDeduction.Equal(decimal.RequireFromString("10.00")),
		"IVSS de 1000.00 debe ser 10.00, fue %s", b.IVSSDeduction)
	assert.True(t, b.INCESDeduction.Equal(decimal.RequireFromString("5.00")),
		"INCES de 1000.00 debe ser 5.00, fue %s", b.INCESDeduction)
	assert.True(t, b.AgencyCommission.Equal(decimal.RequireFromString("20.00")),
		"comisión de 1000.00 debe ser 20.00, fue %s", b.AgencyCommission)
	assert.True(t, b.NetSalary.Equal(decimal.RequireFromString("985.00")),
		"neto de 1000.00 debe ser 985.00, fue %s", b.NetSalary)
}

func TestCalculate_PropiedadesParaVariosSalarios(t *testing.T) {
	salarios := []string{"1.00", "750.50", "1234.56", "99999.99", "3000000.00"}

	for _, s := range salarios {
		base := decimal.RequireFromString(s)
		b := payroll.Calculate(base)

		// Neto = base - deducciones, exacto por construcción
		require.True(t, b.NetSalary.Equal(base.Sub(b.IVSSDeduction).Sub(b.INCESDeduction)),
			"salario %s: neto inconsistente con las deducciones", s)

		// Suma de deducciones = base * 0.015 a 2 decimales
		dedTotal := b.IVSSDeduction.Add(b.INCESDeduction)
		esperado := base.Mul(decimal.RequireFromString("0.015")).Round(2)
		diff := dedTotal.Sub(esperado).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")),
			"salario %s: deducciones %s vs esperado %s", s, dedTotal, esperado)

		// La comisión no participa del neto
		assert.True(t, b.NetSalary.Add(dedTotal).Equal(base),
			"salario %s: la comisión no debe restarse del neto", s)
	}
}

func TestCalculate_SinDerivaDeRedondeoEnLote(t *testing.T) {
	// Muchos recibos con el mismo salario: el total debe ser exactamente N veces
	// el recibo individual (la aritmética decimal no acumula drift).
	base := decimal.RequireFromString("1537.43")
	uno := payroll.Calculate(base)

	total := decimal.Zero
	for i := 0; i < 500; i++ {
		total = total.Add(payroll.Calculate(base).NetSalary)
	}
	assert.True(t, total.Equal(uno.NetSalary.Mul(decimal.NewFromInt(500))),
		"500 recibos iguales deben sumar exactamente 500x el neto individual")
}
