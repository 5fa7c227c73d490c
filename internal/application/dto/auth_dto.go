package dto

import "time"

// RegisterRequest alta de cuenta. Los campos reconocidos dependen del tipo:
// postulante usa first_name..university_id; empresa usa legal_name..contact_email.
type RegisterRequest struct {
	AccountType string `json:"account_type" validate:"required,oneof=postulante empresa hiring_group"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`

	// Postulante
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	NationalID   string `json:"national_id"`
	Phone        string `json:"phone"`
	UniversityID string `json:"university_id"` // opcional

	// Empresa
	LegalName    string `json:"legal_name"`
	TaxID        string `json:"tax_id"`
	Sector       string `json:"sector"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse cuenta sin credenciales.
type AccountResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	AccountType string    `json:"account_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse token + cuenta + rol efectivo calculado en este login.
type LoginResponse struct {
	Token         string          `json:"token"`
	EffectiveRole string          `json:"effective_role"`
	Account       AccountResponse `json:"account"`
}
