package repository

import "github.com/hiringgroup/talento-api/internal/domain/entity"

// PayrollRepository puerto de persistencia para nóminas y recibos.
type PayrollRepository interface {
	// CreateRun inserta la nómina. Retorna domain.ErrDuplicatePayrollPeriod si
	// la tripleta (company, month, year) ya existe; el constraint único hace la
	// verificación a prueba de carreras.
	CreateRun(r *entity.PayrollRun) error
	GetRun(companyID string, month, year int) (*entity.PayrollRun, error)
	CreateReceipt(rc *entity.Receipt) error
	ListReceiptsByRun(runID string) ([]*entity.Receipt, error)
}
