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

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL (usable con pool o tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador de persistencia para contratos. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

// Create persiste un nuevo contrato. El constraint único sobre application_id
// garantiza a lo sumo un contrato por postulación.
func (r *ContractRepo) Create(c *entity.Contract) error {
	query := `
		INSERT INTO contracts (id, application_id, salary, contract_type, start_date, status,
			blood_type, emergency_contact_name, emergency_contact_phone, bank_account_number, bank_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ApplicationID, c.Salary, c.ContractType, c.StartDate, c.Status,
		c.BloodType, c.EmergencyContactName, c.EmergencyContactPhone, c.BankAccountNumber, c.BankID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `
		SELECT id, application_id, salary, contract_type, start_date, status,
			blood_type, emergency_contact_name, emergency_contact_phone, bank_account_number, bank_id
		FROM contracts WHERE id = $1`
	var c entity.Contract
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ApplicationID, &c.Salary, &c.ContractType, &c.StartDate, &c.Status,
		&c.BloodType, &c.EmergencyContactName, &c.EmergencyContactPhone, &c.BankAccountNumber, &c.BankID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// UpdateStatus cambia el estado del contrato (terminación).
func (r *ContractRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE contracts SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update contract status: %w", err)
	}
	return nil
}

// HasActiveByApplicant indica si el postulante tiene algún contrato activo.
// Es la consulta del rol efectivo "contratado": se evalúa en cada login.
func (r *ContractRepo) HasActiveByApplicant(applicantID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM contracts c
			JOIN applications a ON a.id = c.application_id
			WHERE a.applicant_id = $1 AND c.status = 'activo'
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, applicantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("has active contract: %w", err)
	}
	return exists, nil
}

// ListActiveByCompany contratos activos de la empresa, alcanzados vía
// postulación -> vacante. Insumo de la nómina.
func (r *ContractRepo) ListActiveByCompany(companyID string) ([]*entity.ActiveContract, error) {
	query := `
		SELECT c.id, c.salary
		FROM contracts c
		JOIN applications a ON a.id = c.application_id
		JOIN job_postings p ON p.id = a.posting_id
		WHERE p.company_id = $1 AND c.status = 'activo'
		ORDER BY c.start_date`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list active contracts: %w", err)
	}
	defer rows.Close()

	var out []*entity.ActiveContract
	for rows.Next() {
		var c entity.ActiveContract
		if err := rows.Scan(&c.ContractID, &c.Salary); err != nil {
			return nil, fmt.Errorf("scan active contract: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
