package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// ContractRepository puerto de persistencia para contratos.
type ContractRepository interface {
	Create(c *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	UpdateStatus(id, status string) error
	// HasActiveByApplicant indica si el postulante tiene algún contrato activo
	// alcanzable vía sus postulaciones. Base del rol efectivo "contratado".
	HasActiveByApplicant(applicantID string) (bool, error)
	// ListActiveByCompany contratos activos cuyas vacantes pertenecen a la
	// empresa (postulación -> vacante -> empresa). Insumo de la nómina.
	ListActiveByCompany(companyID string) ([]*entity.ActiveContract, error)
}
