package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// WorkExperienceRepository puerto de persistencia para experiencia laboral.
type WorkExperienceRepository interface {
	Create(e *entity.WorkExperience) error
	ListByApplicant(applicantID string) ([]*entity.WorkExperience, error)
	// Delete elimina solo si la experiencia pertenece al postulante.
	Delete(id, applicantID string) error
}
