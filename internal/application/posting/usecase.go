// Package posting gestiona el ciclo de vida de las vacantes:
// Activa -> {Inactiva, Cerrada} por edición manual, Activa -> Cerrada al
// contratar (paquete hiring). De Cerrada no se sale.
package posting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// PostingUseCase CRUD de vacantes con sus guardas.
type PostingUseCase struct {
	postingRepo repository.PostingRepository
	catalogRepo repository.CatalogRepository
}

// NewPostingUseCase construye el caso de uso.
func NewPostingUseCase(postingRepo repository.PostingRepository, catalogRepo repository.CatalogRepository) *PostingUseCase {
	return &PostingUseCase{postingRepo: postingRepo, catalogRepo: catalogRepo}
}

// Create publica una vacante para la empresa. Salario <= 0, título vacío o
// profesión inexistente retornan error de validación.
func (uc *PostingUseCase) Create(companyID string, in dto.CreatePostingRequest) (*dto.PostingResponse, error) {
	if in.Title == "" || in.Description == "" || !in.Salary.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.catalogRepo.Exists(entity.CatalogProfessions, in.ProfessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if in.KnowledgeAreaID != "" {
		ok, err := uc.catalogRepo.Exists(entity.CatalogKnowledgeAreas, in.KnowledgeAreaID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrInvalidInput
		}
	}

	p := &entity.JobPosting{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Title:           in.Title,
		Description:     in.Description,
		Salary:          in.Salary,
		ProfessionID:    in.ProfessionID,
		KnowledgeAreaID: in.KnowledgeAreaID,
		Status:          entity.PostingActiva,
		CreatedAt:       time.Now(),
	}
	if err := uc.postingRepo.Create(p); err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Update reemplaza todos los campos editables. Cualquier campo vacío o salario
// no positivo es error de validación; solo la empresa dueña puede editar y una
// vacante cerrada no admite transición de estatus.
func (uc *PostingUseCase) Update(companyID, postingID string, in dto.UpdatePostingRequest) (*dto.PostingResponse, error) {
	if in.Title == "" || in.Description == "" || !in.Salary.GreaterThan(decimal.Zero) || !entity.ValidPostingStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.KnowledgeAreaID != "" {
		ok, err := uc.catalogRepo.Exists(entity.CatalogKnowledgeAreas, in.KnowledgeAreaID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrInvalidInput
		}
	}
	p, err := uc.postingRepo.GetByID(postingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if p.Status == entity.PostingCerrada && in.Status != entity.PostingCerrada {
		return nil, domain.ErrConflict
	}

	p.Title = in.Title
	p.Description = in.Description
	p.Salary = in.Salary
	p.Status = in.Status
	// Reemplazo completo: vacío desasigna el área de conocimiento
	p.KnowledgeAreaID = in.KnowledgeAreaID
	if err := uc.postingRepo.Update(p); err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Delete elimina la vacante solo si no tiene postulaciones; con postulaciones
// retorna conflicto y el caller debe cerrarla o inactivarla en su lugar.
func (uc *PostingUseCase) Delete(companyID, postingID string) error {
	p, err := uc.postingRepo.GetByID(postingID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return domain.ErrForbidden
	}
	n, err := uc.postingRepo.CountApplications(postingID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.postingRepo.Delete(postingID)
}

// ListActive vacantes activas para la búsqueda del postulante, con filtro por
// área de conocimiento y orden por salario.
func (uc *PostingUseCase) ListActive(areaID, salarySort string) ([]dto.PostingListingResponse, error) {
	if salarySort != "" && salarySort != "ASC" && salarySort != "DESC" {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.postingRepo.ListActive(repository.PostingFilter{
		KnowledgeAreaID: areaID,
		SalarySort:      salarySort,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostingListingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PostingListingResponse{
			ID:            r.PostingID,
			Title:         r.Title,
			CompanyName:   r.CompanyName,
			KnowledgeArea: r.KnowledgeArea,
			Profession:    r.Profession,
			Salary:        r.Salary,
		})
	}
	return out, nil
}

// ListByCompany vacantes de la empresa, en cualquier estatus.
func (uc *PostingUseCase) ListByCompany(companyID string) ([]dto.PostingResponse, error) {
	rows, err := uc.postingRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostingResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, *toResponse(p))
	}
	return out, nil
}

func toResponse(p *entity.JobPosting) *dto.PostingResponse {
	return &dto.PostingResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		Title:           p.Title,
		Description:     p.Description,
		Salary:          p.Salary,
		ProfessionID:    p.ProfessionID,
		KnowledgeAreaID: p.KnowledgeAreaID,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
	}
}
