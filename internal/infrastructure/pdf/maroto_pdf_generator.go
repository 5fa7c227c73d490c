// Package pdf implementa la generación de la constancia de trabajo en PDF.
//
// Layout de la página carta:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hiring Group + leyenda de intermediación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TÍTULO: CONSTANCIA DE TRABAJO                               │
//	│  CUERPO: quién, cargo, empresa, salario, fecha de ingreso    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de emisión + firma del departamento de RRHH   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hiringgroup/talento-api/internal/application/report"
	"github.com/hiringgroup/talento-api/internal/domain/entity"
)

var _ report.CertificatePDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// meses nombres en español; time.Month.String() devuelve inglés.
var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MarotoPDFGenerator implementa report.CertificatePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCertificatePDF genera la constancia y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCertificatePDF(_ context.Context, cert *entity.EmploymentCertificate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Constancia de Trabajo", true).
		WithAuthor("Hiring Group", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(titleRow())
	m.AddRows(bodyRows(cert)...)
	m.AddRows(line.NewRow(8))
	m.AddRows(footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: membrete de la agencia.
func headerRow() core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("HIRING GROUP", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1, Align: align.Center,
			}),
			text.New("Agencia de intermediación laboral", props.Text{
				Size: 9, Top: 10, Color: colorGray, Align: align.Center,
			}),
		),
	)
}

// titleRow: título centrado del documento.
func titleRow() core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CONSTANCIA DE TRABAJO", props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 8, Align: align.Center,
			}),
		),
	)
}

// bodyRows: párrafo de la constancia con los datos del contrato activo.
func bodyRows(cert *entity.EmploymentCertificate) []core.Row {
	parrafo := fmt.Sprintf(
		"Quien suscribe, en representación de Hiring Group, hace constar que "+
			"el(la) ciudadano(a) %s presta sus servicios desempeñando el cargo de %s "+
			"para la empresa %s desde el %s, devengando un salario mensual de Bs. %s.",
		cert.EmployeeName,
		cert.PositionName,
		cert.CompanyName,
		fechaLarga(cert.HiredAt),
		cert.Salary.StringFixed(2),
	)
	constancia := "Constancia que se expide a petición de la parte interesada."

	return []core.Row{
		row.New(34).Add(
			col.New(12).Add(
				text.New(parrafo, props.Text{Size: 11, Top: 4, Align: align.Justify}),
			),
		),
		row.New(12).Add(
			col.New(12).Add(
				text.New(constancia, props.Text{Size: 11, Top: 2}),
			),
		),
	}
}

// footerRows: fecha de emisión y bloque de firma.
func footerRows() []core.Row {
	emision := fechaLarga(time.Now())
	return []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New("Emitida el "+emision+".", props.Text{Size: 10, Color: colorGray}),
			),
		),
		row.New(24).Add(
			col.New(6),
			col.New(6).Add(
				text.New("________________________", props.Text{Size: 11, Top: 10, Align: align.Center}),
				text.New("Departamento de Recursos Humanos", props.Text{Size: 9, Top: 16, Align: align.Center, Color: colorGray}),
				text.New("Hiring Group", props.Text{Size: 9, Top: 20, Align: align.Center, Color: colorGray}),
			),
		),
	}
}

// fechaLarga "2 de enero de 2026".
func fechaLarga(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}
