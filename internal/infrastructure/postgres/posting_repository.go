package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

var _ repository.PostingRepository = (*PostingRepo)(nil)

// PostingRepo implementación del puerto PostingRepository sobre PostgreSQL (usable con pool o tx).
type PostingRepo struct {
	q Querier
}

// NewPostingRepository construye el adaptador de persistencia para vacantes. Pasar pool o tx (Querier).
func NewPostingRepository(q Querier) *PostingRepo {
	return &PostingRepo{q: q}
}

// Create persiste una nueva vacante.
func (r *PostingRepo) Create(p *entity.JobPosting) error {
	query := `
		INSERT INTO job_postings (id, company_id, title, description, salary, profession_id, knowledge_area_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CompanyID, p.Title, p.Description, p.Salary, p.ProfessionID,
		nullIfEmpty(p.KnowledgeAreaID), p.Status, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert posting: %w", err)
	}
	return nil
}

// GetByID obtiene una vacante por ID.
func (r *PostingRepo) GetByID(id string) (*entity.JobPosting, error) {
	query := `
		SELECT id, company_id, title, description, salary, profession_id, knowledge_area_id, status, created_at
		FROM job_postings WHERE id = $1`
	var p entity.JobPosting
	var areaID sql.NullString
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.Title, &p.Description, &p.Salary, &p.ProfessionID,
		&areaID, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get posting: %w", err)
	}
	p.KnowledgeAreaID = areaID.String
	return &p, nil
}

// Update reemplaza los campos editables de la vacante.
func (r *PostingRepo) Update(p *entity.JobPosting) error {
	query := `
		UPDATE job_postings SET title = $2, description = $3, salary = $4, profession_id = $5, knowledge_area_id = $6, status = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Title, p.Description, p.Salary, p.ProfessionID, nullIfEmpty(p.KnowledgeAreaID), p.Status,
	)
	if err != nil {
		return fmt.Errorf("update posting: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estatus (el cierre automático al contratar pasa por aquí).
func (r *PostingRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE job_postings SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update posting status: %w", err)
	}
	return nil
}

// Delete elimina la vacante; si hay postulaciones la FK corta la operación.
func (r *PostingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete posting: %w", err)
	}
	return nil
}

// CountApplications cantidad de postulaciones que referencian la vacante.
func (r *PostingRepo) CountApplications(postingID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM applications WHERE posting_id = $1`, postingID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

// ListActive vacantes activas con nombres resueltos, filtrables por área de
// conocimiento y ordenables por salario. El sort llega validado por el caso de
// uso ("ASC" o "DESC"); aquí solo se elige entre dos queries constantes.
func (r *PostingRepo) ListActive(f repository.PostingFilter) ([]*entity.PostingListing, error) {
	query := `
		SELECT p.id, p.title, c.legal_name, COALESCE(ka.name, ''), pr.name, p.salary
		FROM job_postings p
		JOIN company_profiles c ON c.account_id = p.company_id
		JOIN professions pr ON pr.id = p.profession_id
		LEFT JOIN knowledge_areas ka ON ka.id = p.knowledge_area_id
		WHERE p.status = 'activa' AND ($1 = '' OR p.knowledge_area_id = $1::uuid)`
	switch f.SalarySort {
	case "ASC":
		query += ` ORDER BY p.salary ASC`
	case "DESC":
		query += ` ORDER BY p.salary DESC`
	default:
		query += ` ORDER BY p.created_at DESC`
	}

	rows, err := r.q.Query(context.Background(), query, f.KnowledgeAreaID)
	if err != nil {
		return nil, fmt.Errorf("list active postings: %w", err)
	}
	defer rows.Close()

	var out []*entity.PostingListing
	for rows.Next() {
		var l entity.PostingListing
		if err := rows.Scan(&l.PostingID, &l.Title, &l.CompanyName, &l.KnowledgeArea, &l.Profession, &l.Salary); err != nil {
			return nil, fmt.Errorf("scan posting listing: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// ListByCompany todas las vacantes de la empresa, cualquier estatus.
func (r *PostingRepo) ListByCompany(companyID string) ([]*entity.JobPosting, error) {
	query := `
		SELECT id, company_id, title, description, salary, profession_id, knowledge_area_id, status, created_at
		FROM job_postings WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list postings by company: %w", err)
	}
	defer rows.Close()

	var out []*entity.JobPosting
	for rows.Next() {
		var p entity.JobPosting
		var areaID sql.NullString
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Description, &p.Salary, &p.ProfessionID, &areaID, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		p.KnowledgeAreaID = areaID.String
		out = append(out, &p)
	}
	return out, rows.Err()
}
