package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proyecciones de solo lectura para listados y reportes.

// PostingListing vacante activa con los nombres resueltos de empresa,
// área de conocimiento y profesión (búsqueda del postulante).
type PostingListing struct {
	PostingID     string
	Title         string
	CompanyName   string
	KnowledgeArea string // vacío = no asignada
	Profession    string
	Salary        decimal.Decimal
}

// ApplicationStatusRow postulación vista por su postulante.
type ApplicationStatusRow struct {
	PostingTitle  string
	OfferedSalary decimal.Decimal
	CompanyName   string
	AppliedAt     time.Time
	Status        string
}

// PayrollEmployeeRow desglose por empleado de una nómina (empresa, mes, año).
type PayrollEmployeeRow struct {
	EmployeeName string
	NationalID   string
	BaseSalary   decimal.Decimal
	NetSalary    decimal.Decimal
}

// PayrollTotalRow total histórico de una nómina por empresa y periodo.
type PayrollTotalRow struct {
	CompanyName string
	Month       int
	Year        int
	Total       decimal.Decimal
}

// ReceiptRow recibo visto por el empleado contratado.
type ReceiptRow struct {
	Month       int
	Year        int
	PaymentDate time.Time
	BaseSalary  decimal.Decimal
	NetSalary   decimal.Decimal
}

// EmploymentCertificate datos estructurados de la constancia de trabajo del
// contrato activo de un postulante. El render (texto o PDF) es del caller.
type EmploymentCertificate struct {
	EmployeeName string
	PositionName string
	CompanyName  string
	Salary       decimal.Decimal
	HiredAt      time.Time
}
