package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiringgroup/talento-api/internal/application/report"
	"github.com/hiringgroup/talento-api/internal/domain"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
)

type fakeReportRepo struct {
	cert     *entity.EmploymentCertificate
	receipts []*entity.ReceiptRow

	lastMonth *int // último filtro recibido
	lastYear  *int
}

func (f *fakeReportRepo) PayrollByCompanyPeriod(string, int, int) ([]*entity.PayrollEmployeeRow, error) {
	return nil, nil
}
func (f *fakeReportRepo) PayrollTotals() ([]*entity.PayrollTotalRow, error) { return nil, nil }
func (f *fakeReportRepo) ReceiptsByApplicant(_ string, month, year *int) ([]*entity.ReceiptRow, error) {
	f.lastMonth, f.lastYear = month, year
	return f.receipts, nil
}
func (f *fakeReportRepo) EmploymentCertificate(string) (*entity.EmploymentCertificate, error) {
	return f.cert, nil
}

type fakePDFGenerator struct{ called bool }

func (f *fakePDFGenerator) GenerateCertificatePDF(_ context.Context, cert *entity.EmploymentCertificate) ([]byte, error) {
	f.called = true
	return []byte("%PDF-1.7 " + cert.EmployeeName), nil
}

func sampleCertificate() *entity.EmploymentCertificate {
	return &entity.EmploymentCertificate{
		EmployeeName: "Ana Rodríguez",
		PositionName: "Desarrollador Backend",
		CompanyName:  "Acme C.A.",
		Salary:       decimal.RequireFromString("1500.00"),
		HiredAt:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmploymentCertificate_ConContratoActivo(t *testing.T) {
	repo := &fakeReportRepo{cert: sampleCertificate()}
	uc := report.NewReportUseCase(repo, &fakePDFGenerator{})

	out, err := uc.EmploymentCertificate("post-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Rodríguez", out.EmployeeName)
	assert.Equal(t, "Acme C.A.", out.CompanyName)
	assert.True(t, out.Salary.Equal(decimal.RequireFromString("1500.00")))
}

// Sin contrato activo no hay constancia, ni en JSON ni en PDF.
func TestEmploymentCertificate_SinContratoActivo(t *testing.T) {
	gen := &fakePDFGenerator{}
	uc := report.NewReportUseCase(&fakeReportRepo{}, gen)

	_, err := uc.EmploymentCertificate("post-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.EmploymentCertificatePDF(context.Background(), "post-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, gen.called, "el generador no debe invocarse sin constancia")
}

func TestEmploymentCertificatePDF_Renderiza(t *testing.T) {
	gen := &fakePDFGenerator{}
	uc := report.NewReportUseCase(&fakeReportRepo{cert: sampleCertificate()}, gen)

	pdf, err := uc.EmploymentCertificatePDF(context.Background(), "post-1")
	require.NoError(t, err)
	assert.True(t, gen.called)
	assert.NotEmpty(t, pdf)
}

// El filtro de periodo viaja tal cual al repositorio; nil significa sin filtro.
func TestReceiptsByApplicant_Filtro(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := report.NewReportUseCase(repo, &fakePDFGenerator{})

	_, err := uc.ReceiptsByApplicant("post-1", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, repo.lastMonth)
	assert.Nil(t, repo.lastYear)

	month, year := 3, 2026
	_, err = uc.ReceiptsByApplicant("post-1", &month, &year)
	require.NoError(t, err)
	require.NotNil(t, repo.lastMonth)
	assert.Equal(t, 3, *repo.lastMonth)

	malo := 13
	_, err = uc.ReceiptsByApplicant("post-1", &malo, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPayrollByCompanyPeriod_Validacion(t *testing.T) {
	uc := report.NewReportUseCase(&fakeReportRepo{}, &fakePDFGenerator{})

	_, err := uc.PayrollByCompanyPeriod("", 3, 2026)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.PayrollByCompanyPeriod("emp-1", 0, 2026)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.PayrollByCompanyPeriod("emp-1", 3, 1999)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
