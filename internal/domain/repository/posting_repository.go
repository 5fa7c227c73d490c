package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// PostingFilter filtros para el listado de vacantes activas.
type PostingFilter struct {
	KnowledgeAreaID string // vacío = todas
	SalarySort      string // "", "ASC", "DESC"
}

// PostingRepository puerto de persistencia para vacantes.
type PostingRepository interface {
	Create(p *entity.JobPosting) error
	GetByID(id string) (*entity.JobPosting, error)
	Update(p *entity.JobPosting) error
	UpdateStatus(id, status string) error
	// Delete elimina la vacante. Retorna domain.ErrConflict si existen
	// postulaciones que la referencian.
	Delete(id string) error
	CountApplications(postingID string) (int, error)
	ListActive(f PostingFilter) ([]*entity.PostingListing, error)
	ListByCompany(companyID string) ([]*entity.JobPosting, error)
}
