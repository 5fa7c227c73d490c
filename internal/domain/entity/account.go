package entity

import "time"

// Tipos de cuenta declarados al registrarse.
const (
	AccountPostulante  = "postulante"
	AccountEmpresa     = "empresa"
	AccountHiringGroup = "hiring_group"
)

// RoleContratado es el rol EFECTIVO de un postulante con contrato activo.
// Nunca se persiste: se deriva en cada login a partir de los contratos.
const RoleContratado = "contratado"

// Estados de activación de una cuenta.
const (
	AccountActivo   = "activo"
	AccountInactivo = "inactivo"
)

// Account representa una identidad del sistema. El tipo declarado no cambia;
// el rol efectivo puede diferir (ver RoleContratado).
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	AccountType  string // postulante, empresa, hiring_group
	Status       string // activo, inactivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidAccountType indica si el tipo declarado pertenece al conjunto cerrado.
func ValidAccountType(t string) bool {
	switch t {
	case AccountPostulante, AccountEmpresa, AccountHiringGroup:
		return true
	}
	return false
}
