package payroll_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/payroll"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
	"github.com/hiringgroup/talento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria con semántica transaccional (copia + publicación al commit).
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	runs     map[string]*entity.PayrollRun // por id
	receipts map[string]*entity.Receipt
	active   []*entity.ActiveContract // contratos activos de la empresa de prueba
}

func newStore() *store {
	return &store{runs: map[string]*entity.PayrollRun{}, receipts: map[string]*entity.Receipt{}}
}

func (s *store) clone() *store {
	c := newStore()
	for k, v := range s.runs {
		cp := *v
		c.runs[k] = &cp
	}
	for k, v := range s.receipts {
		cp := *v
		c.receipts[k] = &cp
	}
	c.active = s.active
	return c
}

type storePayrollRepo struct{ s *store }

// CreateRun replica el constraint único (company, month, year).
func (r *storePayrollRepo) CreateRun(run *entity.PayrollRun) error {
	for _, existing := range r.s.runs {
		if existing.CompanyID == run.CompanyID && existing.Month == run.Month && existing.Year == run.Year {
			return domain.ErrDuplicatePayrollPeriod
		}
	}
	r.s.runs[run.ID] = run
	return nil
}

func (r *storePayrollRepo) GetRun(companyID string, month, year int) (*entity.PayrollRun, error) {
	for _, run := range r.s.runs {
		if run.CompanyID == companyID && run.Month == month && run.Year == year {
			return run, nil
		}
	}
	return nil, nil
}

func (r *storePayrollRepo) CreateReceipt(rc *entity.Receipt) error {
	r.s.receipts[rc.ID] = rc
	return nil
}

func (r *storePayrollRepo) ListReceiptsByRun(runID string) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, rc := range r.s.receipts {
		if rc.PayrollRunID == runID {
			out = append(out, rc)
		}
	}
	return out, nil
}

type storeContractRepo struct{ s *store }

func (r *storeContractRepo) Create(*entity.Contract) error             { return nil }
func (r *storeContractRepo) GetByID(string) (*entity.Contract, error)  { return nil, nil }
func (r *storeContractRepo) UpdateStatus(string, string) error         { return nil }
func (r *storeContractRepo) HasActiveByApplicant(string) (bool, error) { return false, nil }
func (r *storeContractRepo) ListActiveByCompany(string) ([]*entity.ActiveContract, error) {
	return r.s.active, nil
}

type fakeCompanyRepo struct{ exists bool }

func (f *fakeCompanyRepo) Create(*entity.CompanyProfile) error { return nil }
func (f *fakeCompanyRepo) GetByAccountID(id string) (*entity.CompanyProfile, error) {
	if !f.exists {
		return nil, nil
	}
	return &entity.CompanyProfile{AccountID: id, LegalName: "Acme C.A."}, nil
}
func (f *fakeCompanyRepo) Update(*entity.CompanyProfile) error     { return nil }
func (f *fakeCompanyRepo) List() ([]*entity.CompanyProfile, error) { return nil, nil }

// wrappedPayrollRepo envuelve los errores de escritura con contexto, como
// hacen los adaptadores reales sobre pgx.
type wrappedPayrollRepo struct{ storePayrollRepo }

func (r *wrappedPayrollRepo) CreateRun(run *entity.PayrollRun) error {
	if err := r.storePayrollRepo.CreateRun(run); err != nil {
		return fmt.Errorf("insert payroll run: %w", err)
	}
	return nil
}

type fakeTxRunner struct {
	s        *store
	wrapErrs bool // los repos de la tx envuelven sus errores
}

func (f *fakeTxRunner) RunPayroll(_ context.Context, fn func(
	payrolls repository.PayrollRepository,
	contracts repository.ContractRepository,
) error) error {
	work := f.s.clone()
	var payrolls repository.PayrollRepository = &storePayrollRepo{s: work}
	if f.wrapErrs {
		payrolls = &wrappedPayrollRepo{storePayrollRepo{s: work}}
	}
	if err := fn(payrolls, &storeContractRepo{s: work}); err != nil {
		return err // rollback
	}
	*f.s = *work
	return nil
}

func newTestUseCase(s *store) *payroll.PayrollUseCase {
	return payroll.NewPayrollUseCase(&fakeTxRunner{s: s}, &fakeCompanyRepo{exists: true})
}

func activeContracts(salaries ...string) []*entity.ActiveContract {
	out := make([]*entity.ActiveContract, 0, len(salaries))
	for i, s := range salaries {
		out = append(out, &entity.ActiveContract{
			ContractID: fmt.Sprintf("con-%d", i+1),
			Salary:     decimal.RequireFromString(s),
		})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Run
// ──────────────────────────────────────────────────────────────────────────────

// Un recibo por contrato activo, con las deducciones del salario de cada uno.
func TestRun_UnReciboPorContratoActivo(t *testing.T) {
	s := newStore()
	s.active = activeContracts("1000.00", "2500.00", "800.50")
	uc := newTestUseCase(s)

	out, err := uc.Run(context.Background(), dto.RunPayrollRequest{CompanyID: "emp-1", Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, 3, out.ReceiptsCount)
	require.Len(t, out.Receipts, 3)
	assert.Len(t, s.receipts, 3, "los tres recibos quedan persistidos")
	require.Len(t, s.runs, 1)

	// El primer contrato: 1000.00 -> IVSS 10.00, INCES 5.00, neto 985.00
	primero := out.Receipts[0]
	assert.True(t, primero.IVSSDeduction.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, primero.INCESDeduction.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, primero.NetSalary.Equal(decimal.RequireFromString("985.00")))
}

// La tripleta (empresa, mes, año) es única: la segunda corrida falla y la
// primera queda intacta.
func TestRun_PeriodoDuplicado(t *testing.T) {
	s := newStore()
	s.active = activeContracts("1000.00")
	uc := newTestUseCase(s)

	in := dto.RunPayrollRequest{CompanyID: "emp-1", Month: 3, Year: 2026}
	_, err := uc.Run(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Run(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicatePayrollPeriod)
	assert.Len(t, s.runs, 1, "la primera nómina sigue intacta")
	assert.Len(t, s.receipts, 1)
}

// El duplicado sigue reportándose como tal aunque el adaptador lo envuelva
// con contexto adicional.
func TestRun_PeriodoDuplicadoEnvueltoDesdeStorage(t *testing.T) {
	s := newStore()
	s.active = activeContracts("1000.00")
	uc := payroll.NewPayrollUseCase(&fakeTxRunner{s: s, wrapErrs: true}, &fakeCompanyRepo{exists: true})

	in := dto.RunPayrollRequest{CompanyID: "emp-1", Month: 3, Year: 2026}
	_, err := uc.Run(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Run(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicatePayrollPeriod)
}

// El mismo periodo para otra empresa sí procede.
func TestRun_MismoPeriodoOtraEmpresa(t *testing.T) {
	s := newStore()
	s.active = activeContracts("1000.00")
	uc := newTestUseCase(s)

	_, err := uc.Run(context.Background(), dto.RunPayrollRequest{CompanyID: "emp-1", Month: 3, Year: 2026})
	require.NoError(t, err)
	_, err = uc.Run(context.Background(), dto.RunPayrollRequest{CompanyID: "emp-2", Month: 3, Year: 2026})
	assert.NoError(t, err)
	assert.Len(t, s.runs, 2)
}

// Sin empleados activos el rollback elimina la nómina recién insertada:
// no sobrevive ninguna fila.
func TestRun_SinEmpleadosActivos_NadaPersiste(t *testing.T) {
	s := newStore()
	s.active = nil
	uc := newTestUseCase(s)

	_, err := uc.Run(context.Background(), dto.RunPayrollRequest{CompanyID: "emp-1", Month: 3, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrNoActiveEmployees)
	assert.Empty(t, s.runs, "la cabecera de la nómina no debe sobrevivir al rollback")
	assert.Empty(t, s.receipts)
}

func TestRun_PeriodoFueraDeRango(t *testing.T) {
	s := newStore()
	uc := newTestUseCase(s)

	casos := []dto.RunPayrollRequest{
		{CompanyID: "emp-1", Month: 0, Year: 2026},
		{CompanyID: "emp-1", Month: 13, Year: 2026},
		{CompanyID: "emp-1", Month: 3, Year: 1999},
		{CompanyID: "emp-1", Month: 3, Year: 2101},
		{CompanyID: "", Month: 3, Year: 2026},
	}
	for _, in := range casos {
		_, err := uc.Run(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "month=%d year=%d", in.Month, in.Year)
	}
}

func TestRun_EmpresaInexistente(t *testing.T) {
	s := newStore()
	uc := payroll.NewPayrollUseCase(&fakeTxRunner{s: s}, &fakeCompanyRepo{exists: false})

	_, err := uc.Run(context.Background(), dto.RunPayrollRequest{CompanyID: "emp-x", Month: 3, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
