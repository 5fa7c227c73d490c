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

var _ repository.ApplicantProfileRepository = (*ApplicantProfileRepo)(nil)
var _ repository.CompanyProfileRepository = (*CompanyProfileRepo)(nil)

// ApplicantProfileRepo implementación del puerto ApplicantProfileRepository sobre PostgreSQL (usable con pool o tx).
type ApplicantProfileRepo struct {
	q Querier
}

// NewApplicantProfileRepository construye el adaptador de persistencia para perfiles de postulante. Pasar pool o tx (Querier).
func NewApplicantProfileRepository(q Querier) *ApplicantProfileRepo {
	return &ApplicantProfileRepo{q: q}
}

// Create persiste un nuevo perfil de postulante. Cédula duplicada retorna ErrNationalIDExists.
func (r *ApplicantProfileRepo) Create(p *entity.ApplicantProfile) error {
	query := `
		INSERT INTO applicant_profiles (account_id, first_name, last_name, national_id, phone, university_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.AccountID, p.FirstName, p.LastName, p.NationalID, p.Phone, nullIfEmpty(p.UniversityID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNationalIDExists
		}
		return fmt.Errorf("insert applicant profile: %w", err)
	}
	return nil
}

// GetByAccountID obtiene el perfil de postulante de una cuenta.
func (r *ApplicantProfileRepo) GetByAccountID(accountID string) (*entity.ApplicantProfile, error) {
	query := `
		SELECT account_id, first_name, last_name, national_id, phone, university_id
		FROM applicant_profiles WHERE account_id = $1`
	var p entity.ApplicantProfile
	var universityID sql.NullString
	err := r.q.QueryRow(context.Background(), query, accountID).Scan(
		&p.AccountID, &p.FirstName, &p.LastName, &p.NationalID, &p.Phone, &universityID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get applicant profile: %w", err)
	}
	p.UniversityID = universityID.String
	return &p, nil
}

// Update actualiza el perfil. La cédula no se modifica después del registro.
func (r *ApplicantProfileRepo) Update(p *entity.ApplicantProfile) error {
	query := `
		UPDATE applicant_profiles SET first_name = $2, last_name = $3, phone = $4, university_id = $5
		WHERE account_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.AccountID, p.FirstName, p.LastName, p.Phone, nullIfEmpty(p.UniversityID),
	)
	if err != nil {
		return fmt.Errorf("update applicant profile: %w", err)
	}
	return nil
}

// CompanyProfileRepo implementación del puerto CompanyProfileRepository sobre PostgreSQL (usable con pool o tx).
type CompanyProfileRepo struct {
	q Querier
}

// NewCompanyProfileRepository construye el adaptador de persistencia para perfiles de empresa. Pasar pool o tx (Querier).
func NewCompanyProfileRepository(q Querier) *CompanyProfileRepo {
	return &CompanyProfileRepo{q: q}
}

// Create persiste un nuevo perfil de empresa. RIF duplicado retorna ErrTaxIDExists.
func (r *CompanyProfileRepo) Create(p *entity.CompanyProfile) error {
	query := `
		INSERT INTO company_profiles (account_id, legal_name, tax_id, sector, contact_name, contact_phone, contact_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.AccountID, p.LegalName, p.TaxID, p.Sector, p.ContactName, p.ContactPhone, p.ContactEmail,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTaxIDExists
		}
		return fmt.Errorf("insert company profile: %w", err)
	}
	return nil
}

// GetByAccountID obtiene el perfil de empresa de una cuenta.
func (r *CompanyProfileRepo) GetByAccountID(accountID string) (*entity.CompanyProfile, error) {
	query := `
		SELECT account_id, legal_name, tax_id, sector, contact_name, contact_phone, contact_email
		FROM company_profiles WHERE account_id = $1`
	var p entity.CompanyProfile
	err := r.q.QueryRow(context.Background(), query, accountID).Scan(
		&p.AccountID, &p.LegalName, &p.TaxID, &p.Sector, &p.ContactName, &p.ContactPhone, &p.ContactEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return &p, nil
}

// Update actualiza el perfil. El RIF no se modifica después del registro.
func (r *CompanyProfileRepo) Update(p *entity.CompanyProfile) error {
	query := `
		UPDATE company_profiles SET legal_name = $2, sector = $3, contact_name = $4, contact_phone = $5, contact_email = $6
		WHERE account_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.AccountID, p.LegalName, p.Sector, p.ContactName, p.ContactPhone, p.ContactEmail,
	)
	if err != nil {
		return fmt.Errorf("update company profile: %w", err)
	}
	return nil
}

// List lista todas las empresas registradas, por nombre legal.
func (r *CompanyProfileRepo) List() ([]*entity.CompanyProfile, error) {
	query := `
		SELECT account_id, legal_name, tax_id, sector, contact_name, contact_phone, contact_email
		FROM company_profiles ORDER BY legal_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var out []*entity.CompanyProfile
	for rows.Next() {
		var p entity.CompanyProfile
		if err := rows.Scan(&p.AccountID, &p.LegalName, &p.TaxID, &p.Sector, &p.ContactName, &p.ContactPhone, &p.ContactEmail); err != nil {
			return nil, fmt.Errorf("scan company profile: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas UUID opcionales.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
