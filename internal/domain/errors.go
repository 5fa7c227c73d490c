package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los mapea a
// códigos de estado; la capa postgres los produce a partir de SQLSTATE.
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrNationalIDExists       = errors.New("la cédula de identidad ya está registrada")
	ErrTaxIDExists            = errors.New("el RIF ya está registrado")
	ErrDuplicateApplication   = errors.New("ya existe una postulación para esta vacante")
	ErrDuplicatePayrollPeriod = errors.New("ya se generó una nómina para esta empresa en este periodo")
	ErrNoActiveEmployees      = errors.New("no hay empleados activos para esta empresa")
	ErrPostingNotActive       = errors.New("la vacante no está activa")
	ErrUnauthorized           = errors.New("credenciales inválidas")
	ErrForbidden              = errors.New("acceso denegado")
	ErrConflict               = errors.New("conflicto con el estado actual")
)
