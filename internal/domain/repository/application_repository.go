package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// ApplicationRepository puerto de persistencia para postulaciones.
type ApplicationRepository interface {
	// Create inserta la postulación. Retorna domain.ErrDuplicateApplication si
	// el par (applicant, posting) ya existe (constraint único en storage).
	Create(a *entity.Application) error
	GetByID(id string) (*entity.Application, error)
	UpdateStatus(id, status string) error
	// ListHireable postulaciones en estado recibida o en_revision, con nombre
	// del postulante y cargo de la vacante.
	ListHireable() ([]*entity.HireableApplication, error)
	ListByApplicant(applicantID string) ([]*entity.ApplicationStatusRow, error)
}
