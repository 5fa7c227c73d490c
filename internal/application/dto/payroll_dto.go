package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunPayrollRequest ejecución de nómina para una empresa y periodo.
type RunPayrollRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Month     int    `json:"month" validate:"required,min=1,max=12"`
	Year      int    `json:"year" validate:"required,min=2000,max=2100"`
}

// ReceiptResponse recibo generado dentro de una nómina.
type ReceiptResponse struct {
	ID               string          `json:"id"`
	ContractID       string          `json:"contract_id"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	IVSSDeduction    decimal.Decimal `json:"ivss_deduction"`
	INCESDeduction   decimal.Decimal `json:"inces_deduction"`
	AgencyCommission decimal.Decimal `json:"agency_commission"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	PaymentDate      time.Time       `json:"payment_date"`
}

// PayrollRunResponse nómina ejecutada con sus recibos.
type PayrollRunResponse struct {
	ID            string            `json:"id"`
	CompanyID     string            `json:"company_id"`
	Month         int               `json:"month"`
	Year          int               `json:"year"`
	ReceiptsCount int               `json:"receipts_count"`
	Receipts      []ReceiptResponse `json:"receipts"`
}
