package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account (DIP).
type AccountRepository interface {
	Create(a *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	UpdatePassword(id, passwordHash string) error
	// List lista cuentas excluyendo el tipo indicado (la vista admin oculta
	// las cuentas hiring_group).
	List(excludeType string) ([]*entity.Account, error)
	// Delete elimina la cuenta y su perfil. Retorna domain.ErrConflict si
	// contratos o postulaciones la referencian (FK).
	Delete(id string) error
}
