package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePostingRequest alta de vacante por una empresa.
type CreatePostingRequest struct {
	Title           string          `json:"title" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Salary          decimal.Decimal `json:"salary" validate:"required"`
	ProfessionID    string          `json:"profession_id" validate:"required"`
	KnowledgeAreaID string          `json:"knowledge_area_id"` // opcional
}

// UpdatePostingRequest reemplazo completo de campos de una vacante.
type UpdatePostingRequest struct {
	Title           string          `json:"title" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Salary          decimal.Decimal `json:"salary" validate:"required"`
	Status          string          `json:"status" validate:"required,oneof=activa inactiva cerrada"`
	KnowledgeAreaID string          `json:"knowledge_area_id"`
}

// PostingResponse vacante como la ve su empresa.
type PostingResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Salary          decimal.Decimal `json:"salary"`
	ProfessionID    string          `json:"profession_id"`
	KnowledgeAreaID string          `json:"knowledge_area_id,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PostingListingResponse vacante activa en la búsqueda del postulante.
type PostingListingResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	CompanyName   string          `json:"company_name"`
	KnowledgeArea string          `json:"knowledge_area"`
	Profession    string          `json:"profession"`
	Salary        decimal.Decimal `json:"salary"`
}
