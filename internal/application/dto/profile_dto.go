package dto

import "time"

// UpdateProfileRequest actualización del perfil propio. Password vacío = no
// cambiar la contraseña. Los campos reconocidos dependen del tipo de cuenta.
type UpdateProfileRequest struct {
	Password string `json:"password"` // opcional, min 8 si viene

	// Postulante
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	UniversityID string `json:"university_id"`

	// Empresa
	LegalName    string `json:"legal_name"`
	Sector       string `json:"sector"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

// CompanyResponse perfil de empresa en la vista administrativa.
type CompanyResponse struct {
	AccountID    string `json:"account_id"`
	LegalName    string `json:"legal_name"`
	TaxID        string `json:"tax_id"`
	Sector       string `json:"sector"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

// WorkExperienceRequest alta de experiencia laboral.
type WorkExperienceRequest struct {
	CompanyName string     `json:"company_name" validate:"required"`
	RoleTitle   string     `json:"role_title" validate:"required"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"` // nil = empleo actual
}

// WorkExperienceResponse entrada del historial laboral.
type WorkExperienceResponse struct {
	ID          string     `json:"id"`
	CompanyName string     `json:"company_name"`
	RoleTitle   string     `json:"role_title"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}
