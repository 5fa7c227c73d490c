package posting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/posting"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePostingRepo struct {
	postings     map[string]*entity.JobPosting
	applications map[string]int // postulaciones por vacante
}

func newFakePostingRepo() *fakePostingRepo {
	return &fakePostingRepo{postings: map[string]*entity.JobPosting{}, applications: map[string]int{}}
}

func (f *fakePostingRepo) Create(p *entity.JobPosting) error { f.postings[p.ID] = p; return nil }
func (f *fakePostingRepo) GetByID(id string) (*entity.JobPosting, error) {
	return f.postings[id], nil
}
func (f *fakePostingRepo) Update(p *entity.JobPosting) error { f.postings[p.ID] = p; return nil }
func (f *fakePostingRepo) UpdateStatus(id, status string) error {
	if p, ok := f.postings[id]; ok {
		p.Status = status
	}
	return nil
}
func (f *fakePostingRepo) Delete(id string) error {
	delete(f.postings, id)
	return nil
}
func (f *fakePostingRepo) CountApplications(id string) (int, error) {
	return f.applications[id], nil
}
func (f *fakePostingRepo) ListActive(repository.PostingFilter) ([]*entity.PostingListing, error) {
	var out []*entity.PostingListing
	for _, p := range f.postings {
		if p.Status == entity.PostingActiva {
			out = append(out, &entity.PostingListing{PostingID: p.ID, Title: p.Title, Salary: p.Salary})
		}
	}
	return out, nil
}
func (f *fakePostingRepo) ListByCompany(companyID string) ([]*entity.JobPosting, error) {
	var out []*entity.JobPosting
	for _, p := range f.postings {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCatalogRepo struct{ professionExists, areaExists bool }

func (f *fakeCatalogRepo) List(entity.Catalog) ([]*entity.CatalogItem, error) { return nil, nil }
func (f *fakeCatalogRepo) Create(entity.Catalog, *entity.CatalogItem) error   { return nil }
func (f *fakeCatalogRepo) Rename(entity.Catalog, string, string) error        { return nil }
func (f *fakeCatalogRepo) Delete(entity.Catalog, string) error                { return nil }
func (f *fakeCatalogRepo) Exists(c entity.Catalog, _ string) (bool, error) {
	if c == entity.CatalogKnowledgeAreas {
		return f.areaExists, nil
	}
	return f.professionExists, nil
}

func newTestUseCase() (*posting.PostingUseCase, *fakePostingRepo) {
	repo := newFakePostingRepo()
	return posting.NewPostingUseCase(repo, &fakeCatalogRepo{professionExists: true, areaExists: true}), repo
}

func validCreateRequest() dto.CreatePostingRequest {
	return dto.CreatePostingRequest{
		Title:        "Desarrollador Backend",
		Description:  "Servicios en Go sobre PostgreSQL",
		Salary:       decimal.RequireFromString("1500.00"),
		ProfessionID: "prof-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NaceActiva(t *testing.T) {
	uc, _ := newTestUseCase()
	out, err := uc.Create("emp-1", validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.PostingActiva, out.Status)
	assert.Equal(t, "emp-1", out.CompanyID)
}

func TestCreate_Validacion(t *testing.T) {
	uc, _ := newTestUseCase()

	sinTitulo := validCreateRequest()
	sinTitulo.Title = ""
	_, err := uc.Create("emp-1", sinTitulo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	salarioCero := validCreateRequest()
	salarioCero.Salary = decimal.Zero
	_, err = uc.Create("emp-1", salarioCero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	salarioNegativo := validCreateRequest()
	salarioNegativo.Salary = decimal.RequireFromString("-100")
	_, err = uc.Create("emp-1", salarioNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ProfesionInexistente(t *testing.T) {
	repo := newFakePostingRepo()
	uc := posting.NewPostingUseCase(repo, &fakeCatalogRepo{professionExists: false, areaExists: true})
	_, err := uc.Create("emp-1", validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Solo la empresa dueña puede editar su vacante.
func TestUpdate_SoloLaDuena(t *testing.T) {
	uc, _ := newTestUseCase()
	created, err := uc.Create("emp-1", validCreateRequest())
	require.NoError(t, err)

	in := dto.UpdatePostingRequest{
		Title:       created.Title,
		Description: created.Description,
		Salary:      created.Salary,
		Status:      entity.PostingInactiva,
	}
	_, err = uc.Update("emp-2", created.ID, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Update("emp-1", created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, entity.PostingInactiva, out.Status)
}

// El área de conocimiento se valida contra el catálogo igual que en Create, y
// el reemplazo completo permite desasignarla enviándola vacía.
func TestUpdate_AreaDeConocimiento(t *testing.T) {
	repo := newFakePostingRepo()
	catalogs := &fakeCatalogRepo{professionExists: true, areaExists: true}
	uc := posting.NewPostingUseCase(repo, catalogs)

	in := validCreateRequest()
	in.KnowledgeAreaID = "area-1"
	created, err := uc.Create("emp-1", in)
	require.NoError(t, err)
	require.Equal(t, "area-1", repo.postings[created.ID].KnowledgeAreaID)

	base := dto.UpdatePostingRequest{
		Title:       created.Title,
		Description: created.Description,
		Salary:      created.Salary,
		Status:      entity.PostingActiva,
	}

	// Área inexistente: error de validación, no un error de FK del storage
	catalogs.areaExists = false
	conArea := base
	conArea.KnowledgeAreaID = "area-fantasma"
	_, err = uc.Update("emp-1", created.ID, conArea)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "area-1", repo.postings[created.ID].KnowledgeAreaID, "la vacante no debe cambiar")

	// Vacía: desasigna el área
	_, err = uc.Update("emp-1", created.ID, base)
	require.NoError(t, err)
	assert.Empty(t, repo.postings[created.ID].KnowledgeAreaID)
}

// De cerrada no se sale, ni siquiera editando.
func TestUpdate_CerradaEsTerminal(t *testing.T) {
	uc, repo := newTestUseCase()
	created, err := uc.Create("emp-1", validCreateRequest())
	require.NoError(t, err)
	repo.postings[created.ID].Status = entity.PostingCerrada

	in := dto.UpdatePostingRequest{
		Title:       created.Title,
		Description: created.Description,
		Salary:      created.Salary,
		Status:      entity.PostingActiva,
	}
	_, err = uc.Update("emp-1", created.ID, in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / ListActive
// ──────────────────────────────────────────────────────────────────────────────

// Una vacante con postulaciones no se elimina: se cierra o inactiva.
func TestDelete_ConPostulaciones(t *testing.T) {
	uc, repo := newTestUseCase()
	created, err := uc.Create("emp-1", validCreateRequest())
	require.NoError(t, err)
	repo.applications[created.ID] = 2

	assert.ErrorIs(t, uc.Delete("emp-1", created.ID), domain.ErrConflict)

	repo.applications[created.ID] = 0
	assert.NoError(t, uc.Delete("emp-1", created.ID))
}

func TestListActive_OrdenInvalido(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.ListActive("", "ASCENDENTE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ListActive("", "ASC")
	assert.NoError(t, err)
	_, err = uc.ListActive("", "DESC")
	assert.NoError(t, err)
}
