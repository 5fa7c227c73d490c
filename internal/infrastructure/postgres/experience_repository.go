package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

var _ repository.WorkExperienceRepository = (*WorkExperienceRepo)(nil)

// WorkExperienceRepo implementación del puerto WorkExperienceRepository sobre PostgreSQL (usable con pool o tx).
type WorkExperienceRepo struct {
	q Querier
}

// NewWorkExperienceRepository construye el adaptador de experiencia laboral. Pasar pool o tx (Querier).
func NewWorkExperienceRepository(q Querier) *WorkExperienceRepo {
	return &WorkExperienceRepo{q: q}
}

// Create persiste una entrada del historial laboral.
func (r *WorkExperienceRepo) Create(e *entity.WorkExperience) error {
	query := `
		INSERT INTO work_experiences (id, applicant_id, company_name, role_title, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ApplicantID, e.CompanyName, e.RoleTitle, e.StartDate, e.EndDate,
	)
	if err != nil {
		return fmt.Errorf("insert work experience: %w", err)
	}
	return nil
}

// ListByApplicant historial laboral del postulante, más reciente primero.
func (r *WorkExperienceRepo) ListByApplicant(applicantID string) ([]*entity.WorkExperience, error) {
	query := `
		SELECT id, applicant_id, company_name, role_title, start_date, end_date
		FROM work_experiences WHERE applicant_id = $1 ORDER BY start_date DESC`
	rows, err := r.q.Query(context.Background(), query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("list work experiences: %w", err)
	}
	defer rows.Close()

	var out []*entity.WorkExperience
	for rows.Next() {
		var e entity.WorkExperience
		var end sql.NullTime
		if err := rows.Scan(&e.ID, &e.ApplicantID, &e.CompanyName, &e.RoleTitle, &e.StartDate, &end); err != nil {
			return nil, fmt.Errorf("scan work experience: %w", err)
		}
		if end.Valid {
			t := end.Time
			e.EndDate = &t
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Delete elimina una entrada solo si pertenece al postulante.
func (r *WorkExperienceRepo) Delete(id, applicantID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM work_experiences WHERE id = $1 AND applicant_id = $2`,
		id, applicantID,
	)
	if err != nil {
		return fmt.Errorf("delete work experience: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
