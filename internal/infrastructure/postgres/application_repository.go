package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL (usable con pool o tx).
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de persistencia para postulaciones. Pasar pool o tx (Querier).
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Create persiste una nueva postulación. El constraint único sobre
// (applicant, posting) retorna ErrDuplicateApplication, también bajo carrera.
func (r *ApplicationRepo) Create(a *entity.Application) error {
	query := `
		INSERT INTO applications (id, applicant_id, posting_id, status, applied_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ApplicantID, a.PostingID, a.Status, a.AppliedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID obtiene una postulación por ID.
func (r *ApplicationRepo) GetByID(id string) (*entity.Application, error) {
	query := `
		SELECT id, applicant_id, posting_id, status, applied_at
		FROM applications WHERE id = $1`
	var a entity.Application
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ApplicantID, &a.PostingID, &a.Status, &a.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

// UpdateStatus cambia el estado de la postulación.
func (r *ApplicationRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE applications SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// ListHireable postulaciones pendientes (recibida o en_revision) con nombre del
// postulante y cargo de la vacante, para el operador de contratación.
func (r *ApplicationRepo) ListHireable() ([]*entity.HireableApplication, error) {
	query := `
		SELECT a.id, ap.first_name || ' ' || ap.last_name, p.title, a.status, a.applied_at
		FROM applications a
		JOIN applicant_profiles ap ON ap.account_id = a.applicant_id
		JOIN job_postings p ON p.id = a.posting_id
		WHERE a.status IN ('recibida', 'en_revision')
		ORDER BY a.applied_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list hireable applications: %w", err)
	}
	defer rows.Close()

	var out []*entity.HireableApplication
	for rows.Next() {
		var h entity.HireableApplication
		if err := rows.Scan(&h.ApplicationID, &h.ApplicantName, &h.PostingTitle, &h.Status, &h.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan hireable application: %w", err)
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

// ListByApplicant postulaciones del postulante con la vista de su seguimiento.
func (r *ApplicationRepo) ListByApplicant(applicantID string) ([]*entity.ApplicationStatusRow, error) {
	query := `
		SELECT p.title, p.salary, c.legal_name, a.applied_at, a.status
		FROM applications a
		JOIN job_postings p ON p.id = a.posting_id
		JOIN company_profiles c ON c.account_id = p.company_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`
	rows, err := r.q.Query(context.Background(), query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("list applications by applicant: %w", err)
	}
	defer rows.Close()

	var out []*entity.ApplicationStatusRow
	for rows.Next() {
		var s entity.ApplicationStatusRow
		if err := rows.Scan(&s.PostingTitle, &s.OfferedSalary, &s.CompanyName, &s.AppliedAt, &s.Status); err != nil {
			return nil, fmt.Errorf("scan application status: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
