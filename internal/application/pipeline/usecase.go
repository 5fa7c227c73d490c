// Package pipeline gestiona las postulaciones: alta, listados y progresión de
// estatus previa a la contratación.
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// ApplicationUseCase casos de uso de postulación.
type ApplicationUseCase struct {
	applicationRepo repository.ApplicationRepository
	postingRepo     repository.PostingRepository
}

// NewApplicationUseCase construye el caso de uso.
func NewApplicationUseCase(applicationRepo repository.ApplicationRepository, postingRepo repository.PostingRepository) *ApplicationUseCase {
	return &ApplicationUseCase{applicationRepo: applicationRepo, postingRepo: postingRepo}
}

// Apply postula al postulante a una vacante. Solo se admite sobre vacantes
// activas. El duplicado por par (applicant, posting) lo detecta el constraint
// único de storage, correcto también bajo envíos concurrentes.
func (uc *ApplicationUseCase) Apply(applicantID string, in dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	if in.PostingID == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.postingRepo.GetByID(in.PostingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status != entity.PostingActiva {
		return nil, domain.ErrPostingNotActive
	}

	a := &entity.Application{
		ID:          uuid.New().String(),
		ApplicantID: applicantID,
		PostingID:   in.PostingID,
		Status:      entity.ApplicationRecibida,
		AppliedAt:   time.Now(),
	}
	if err := uc.applicationRepo.Create(a); err != nil {
		return nil, err
	}
	return &dto.ApplicationResponse{
		ID:          a.ID,
		ApplicantID: a.ApplicantID,
		PostingID:   a.PostingID,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
	}, nil
}

// ListHireable postulaciones en recibida o en_revision para el operador de
// contratación. Lectura pura.
func (uc *ApplicationUseCase) ListHireable() ([]dto.HireableApplicationResponse, error) {
	rows, err := uc.applicationRepo.ListHireable()
	if err != nil {
		return nil, err
	}
	out := make([]dto.HireableApplicationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.HireableApplicationResponse{
			ApplicationID: r.ApplicationID,
			ApplicantName: r.ApplicantName,
			PostingTitle:  r.PostingTitle,
			Status:        r.Status,
			AppliedAt:     r.AppliedAt,
		})
	}
	return out, nil
}

// ListByApplicant historial de postulaciones del postulante.
func (uc *ApplicationUseCase) ListByApplicant(applicantID string) ([]dto.ApplicationStatusResponse, error) {
	rows, err := uc.applicationRepo.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplicationStatusResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ApplicationStatusResponse{
			PostingTitle:  r.PostingTitle,
			OfferedSalary: r.OfferedSalary,
			CompanyName:   r.CompanyName,
			AppliedAt:     r.AppliedAt,
			Status:        r.Status,
		})
	}
	return out, nil
}

// MarkUnderReview pasa una postulación recibida a en_revision (acción del
// operador antes de decidir la contratación).
func (uc *ApplicationUseCase) MarkUnderReview(applicationID string) error {
	a, err := uc.applicationRepo.GetByID(applicationID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if a.Status != entity.ApplicationRecibida {
		return domain.ErrConflict
	}
	return uc.applicationRepo.UpdateStatus(applicationID, entity.ApplicationEnRevision)
}

// Reject rechaza una postulación pendiente.
func (uc *ApplicationUseCase) Reject(applicationID string) error {
	a, err := uc.applicationRepo.GetByID(applicationID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if a.Status != entity.ApplicationRecibida && a.Status != entity.ApplicationEnRevision {
		return domain.ErrConflict
	}
	return uc.applicationRepo.UpdateStatus(applicationID, entity.ApplicationRechazada)
}
