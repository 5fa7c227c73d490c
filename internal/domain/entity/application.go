package entity

import "time"

// Estados de una postulación.
const (
	ApplicationRecibida   = "recibida"
	ApplicationEnRevision = "en_revision"
	ApplicationAceptada   = "aceptada"
	ApplicationRechazada  = "rechazada"
)

// Application asocia un postulante con una vacante. A lo sumo una por par
// (applicant, posting); la unicidad la garantiza un constraint en storage,
// no solo la lógica de aplicación.
type Application struct {
	ID          string
	ApplicantID string
	PostingID   string
	Status      string // recibida, en_revision, aceptada, rechazada
	AppliedAt   time.Time
}

// HireableApplication proyección para el operador de contratación:
// postulación pendiente con nombre del postulante y cargo de la vacante.
type HireableApplication struct {
	ApplicationID string
	ApplicantName string
	PostingTitle  string
	Status        string
	AppliedAt     time.Time
}
