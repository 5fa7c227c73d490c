package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una vacante. Activa -> {Inactiva, Cerrada} por edición manual;
// Activa -> Cerrada automáticamente al contratar. De Cerrada no se sale.
const (
	PostingActiva   = "activa"
	PostingInactiva = "inactiva"
	PostingCerrada  = "cerrada"
)

// JobPosting vacante publicada por una empresa.
type JobPosting struct {
	ID              string
	CompanyID       string
	Title           string
	Description     string
	Salary          decimal.Decimal // siempre > 0
	ProfessionID    string
	KnowledgeAreaID string // opcional, para el filtro de búsqueda
	Status          string // activa, inactiva, cerrada
	CreatedAt       time.Time
}

// ValidPostingStatus indica si el estatus pertenece al conjunto cerrado.
func ValidPostingStatus(s string) bool {
	switch s {
	case PostingActiva, PostingInactiva, PostingCerrada:
		return true
	}
	return false
}
