package entity

import "time"

// ApplicantProfile perfil 1:1 con una cuenta de tipo postulante.
type ApplicantProfile struct {
	AccountID    string
	FirstName    string
	LastName     string
	NationalID   string // cédula de identidad, única
	Phone        string
	UniversityID string // opcional, FK a universities
}

// FullName nombre y apellido para listados y constancias.
func (p *ApplicantProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// WorkExperience entrada del historial laboral de un postulante.
// Se crea y elimina de forma independiente, sin invariantes aguas abajo.
type WorkExperience struct {
	ID          string
	ApplicantID string
	CompanyName string
	RoleTitle   string
	StartDate   time.Time
	EndDate     *time.Time // nil = empleo actual
}
