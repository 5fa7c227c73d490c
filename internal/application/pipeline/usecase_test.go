package pipeline_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/pipeline"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeApplicationRepo struct {
	applications map[string]*entity.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]*entity.Application{}}
}

// Create replica el constraint único (applicant, posting) de storage.
func (f *fakeApplicationRepo) Create(a *entity.Application) error {
	for _, existing := range f.applications {
		if existing.ApplicantID == a.ApplicantID && existing.PostingID == a.PostingID {
			return domain.ErrDuplicateApplication
		}
	}
	f.applications[a.ID] = a
	return nil
}

func (f *fakeApplicationRepo) GetByID(id string) (*entity.Application, error) {
	return f.applications[id], nil
}

func (f *fakeApplicationRepo) UpdateStatus(id, status string) error {
	if a, ok := f.applications[id]; ok {
		a.Status = status
	}
	return nil
}

func (f *fakeApplicationRepo) ListHireable() ([]*entity.HireableApplication, error) {
	var out []*entity.HireableApplication
	for _, a := range f.applications {
		if a.Status == entity.ApplicationRecibida || a.Status == entity.ApplicationEnRevision {
			out = append(out, &entity.HireableApplication{ApplicationID: a.ID, Status: a.Status})
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByApplicant(applicantID string) ([]*entity.ApplicationStatusRow, error) {
	var out []*entity.ApplicationStatusRow
	for _, a := range f.applications {
		if a.ApplicantID == applicantID {
			out = append(out, &entity.ApplicationStatusRow{Status: a.Status})
		}
	}
	return out, nil
}

type fakePostingRepo struct {
	postings map[string]*entity.JobPosting
}

func (f *fakePostingRepo) Create(p *entity.JobPosting) error { f.postings[p.ID] = p; return nil }
func (f *fakePostingRepo) GetByID(id string) (*entity.JobPosting, error) {
	return f.postings[id], nil
}
func (f *fakePostingRepo) Update(p *entity.JobPosting) error { return nil }
func (f *fakePostingRepo) UpdateStatus(id, status string) error {
	if p, ok := f.postings[id]; ok {
		p.Status = status
	}
	return nil
}
func (f *fakePostingRepo) Delete(id string) error                   { return nil }
func (f *fakePostingRepo) CountApplications(id string) (int, error) { return 0, nil }
func (f *fakePostingRepo) ListActive(repository.PostingFilter) ([]*entity.PostingListing, error) {
	return nil, nil
}
func (f *fakePostingRepo) ListByCompany(string) ([]*entity.JobPosting, error) { return nil, nil }

func newTestUseCase() (*pipeline.ApplicationUseCase, *fakeApplicationRepo, *fakePostingRepo) {
	applications := newFakeApplicationRepo()
	postings := &fakePostingRepo{postings: map[string]*entity.JobPosting{}}
	return pipeline.NewApplicationUseCase(applications, postings), applications, postings
}

func seedPosting(postings *fakePostingRepo, id, status string) {
	postings.postings[id] = &entity.JobPosting{
		ID:     id,
		Title:  "Desarrollador Backend",
		Salary: decimal.RequireFromString("1500.00"),
		Status: status,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_Exitosa(t *testing.T) {
	uc, _, postings := newTestUseCase()
	seedPosting(postings, "vac-1", entity.PostingActiva)

	out, err := uc.Apply("post-1", dto.ApplyRequest{PostingID: "vac-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationRecibida, out.Status, "toda postulación nace recibida")
}

// Solo se admite postular sobre vacantes activas.
func TestApply_VacanteNoActiva(t *testing.T) {
	uc, _, postings := newTestUseCase()
	seedPosting(postings, "vac-inactiva", entity.PostingInactiva)
	seedPosting(postings, "vac-cerrada", entity.PostingCerrada)

	for _, id := range []string{"vac-inactiva", "vac-cerrada"} {
		_, err := uc.Apply("post-1", dto.ApplyRequest{PostingID: id})
		assert.ErrorIs(t, err, domain.ErrPostingNotActive, "vacante %s", id)
	}
}

func TestApply_VacanteInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Apply("post-1", dto.ApplyRequest{PostingID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El par (postulante, vacante) es único: la segunda postulación falla.
func TestApply_Duplicada(t *testing.T) {
	uc, _, postings := newTestUseCase()
	seedPosting(postings, "vac-1", entity.PostingActiva)

	_, err := uc.Apply("post-1", dto.ApplyRequest{PostingID: "vac-1"})
	require.NoError(t, err)

	_, err = uc.Apply("post-1", dto.ApplyRequest{PostingID: "vac-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
}

// Otro postulante sí puede postularse a la misma vacante.
func TestApply_OtroPostulanteMismaVacante(t *testing.T) {
	uc, _, postings := newTestUseCase()
	seedPosting(postings, "vac-1", entity.PostingActiva)

	_, err := uc.Apply("post-1", dto.ApplyRequest{PostingID: "vac-1"})
	require.NoError(t, err)
	_, err = uc.Apply("post-2", dto.ApplyRequest{PostingID: "vac-1"})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Progresión de estatus
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkUnderReview_SoloDesdeRecibida(t *testing.T) {
	uc, applications, postings := newTestUseCase()
	seedPosting(postings, "vac-1", entity.PostingActiva)
	out, err := uc.Apply("post-1", dto.ApplyRequest{PostingID: "vac-1"})
	require.NoError(t, err)

	require.NoError(t, uc.MarkUnderReview(out.ID))
	assert.Equal(t, entity.ApplicationEnRevision, applications.applications[out.ID].Status)

	// Segunda revisión: ya no está en recibida
	assert.ErrorIs(t, uc.MarkUnderReview(out.ID), domain.ErrConflict)
}

func TestReject_DesdePendiente(t *testing.T) {
	uc, applications, postings := newTestUseCase()
	seedPosting(postings, "vac-1", entity.PostingActiva)
	out, err := uc.Apply("post-1", dto.ApplyRequest{PostingID: "vac-1"})
	require.NoError(t, err)

	require.NoError(t, uc.Reject(out.ID))
	assert.Equal(t, entity.ApplicationRechazada, applications.applications[out.ID].Status)

	// Una postulación ya decidida no se vuelve a decidir
	assert.ErrorIs(t, uc.Reject(out.ID), domain.ErrConflict)
}
