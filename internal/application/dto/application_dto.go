package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyRequest postulación a una vacante.
type ApplyRequest struct {
	PostingID string `json:"posting_id" validate:"required"`
}

// ApplicationResponse postulación recién creada.
type ApplicationResponse struct {
	ID          string    `json:"id"`
	ApplicantID string    `json:"applicant_id"`
	PostingID   string    `json:"posting_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

// HireableApplicationResponse fila para el operador de contratación.
type HireableApplicationResponse struct {
	ApplicationID string    `json:"application_id"`
	ApplicantName string    `json:"applicant_name"`
	PostingTitle  string    `json:"posting_title"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

// ApplicationStatusResponse postulación vista por su postulante.
type ApplicationStatusResponse struct {
	PostingTitle  string          `json:"posting_title"`
	OfferedSalary decimal.Decimal `json:"offered_salary"`
	CompanyName   string          `json:"company_name"`
	AppliedAt     time.Time       `json:"applied_at"`
	Status        string          `json:"status"`
}
