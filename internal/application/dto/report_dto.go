package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollEmployeeRowResponse fila del reporte de nómina por empresa y periodo.
type PayrollEmployeeRowResponse struct {
	EmployeeName string          `json:"employee_name"`
	NationalID   string          `json:"national_id"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	NetSalary    decimal.Decimal `json:"net_salary"`
}

// PayrollTotalRowResponse total de nómina por empresa y periodo.
type PayrollTotalRowResponse struct {
	CompanyName string          `json:"company_name"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Total       decimal.Decimal `json:"total"`
}

// ReceiptRowResponse recibo visto por el contratado.
type ReceiptRowResponse struct {
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	PaymentDate time.Time       `json:"payment_date"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	NetSalary   decimal.Decimal `json:"net_salary"`
}

// EmploymentCertificateResponse datos de la constancia de trabajo.
type EmploymentCertificateResponse struct {
	EmployeeName string          `json:"employee_name"`
	PositionName string          `json:"position_name"`
	CompanyName  string          `json:"company_name"`
	Salary       decimal.Decimal `json:"salary"`
	HiredAt      time.Time       `json:"hired_at"`
}
