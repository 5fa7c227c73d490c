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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta. Email duplicado retorna ErrEmailAlreadyExists.
func (r *AccountRepo) Create(a *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, account_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Email, a.PasswordHash, a.AccountType, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, account_type, status, created_at, updated_at
		FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.AccountType, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// GetByEmail obtiene una cuenta por email (credencial de login).
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, account_type, status, created_at, updated_at
		FROM accounts WHERE email = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.AccountType, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return &a, nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *AccountRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// List lista cuentas excluyendo el tipo indicado, más recientes primero.
func (r *AccountRepo) List(excludeType string) ([]*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, account_type, status, created_at, updated_at
		FROM accounts WHERE account_type <> $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, excludeType)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.AccountType, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Delete elimina la cuenta y su perfil en cascada. Debe correr sobre un
// Querier transaccional (RunAccountDeletion): si contratos, postulaciones o
// vacantes aún la referencian, la FK corta la operación, se reporta conflicto
// y el rollback descarta los pasos previos de la cascada.
func (r *AccountRepo) Delete(id string) error {
	ctx := context.Background()
	for _, query := range []string{
		`DELETE FROM work_experiences WHERE applicant_id = $1`,
		`DELETE FROM applicant_profiles WHERE account_id = $1`,
		`DELETE FROM company_profiles WHERE account_id = $1`,
		`DELETE FROM accounts WHERE id = $1`,
	} {
		if _, err := r.q.Exec(ctx, query, id); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrConflict
			}
			return fmt.Errorf("delete account: %w", err)
		}
	}
	return nil
}
