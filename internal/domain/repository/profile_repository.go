package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// ApplicantProfileRepository puerto de persistencia para perfiles de postulante.
type ApplicantProfileRepository interface {
	Create(p *entity.ApplicantProfile) error
	GetByAccountID(accountID string) (*entity.ApplicantProfile, error)
	Update(p *entity.ApplicantProfile) error
}

// CompanyProfileRepository puerto de persistencia para perfiles de empresa.
type CompanyProfileRepository interface {
	Create(p *entity.CompanyProfile) error
	GetByAccountID(accountID string) (*entity.CompanyProfile, error)
	Update(p *entity.CompanyProfile) error
	List() ([]*entity.CompanyProfile, error)
}
