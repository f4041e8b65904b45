// Package pdf implementa el reporte imprimible de la agenda de un día,
// pensado para la recepción (un vistazo al día completo: horarios, grupos,
// contacto y estado de cada reserva).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa  │  Fecha del reporte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Hora | Contacto | Adultos | Niños | Estado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: reservas del día / personas (aforo consumido)      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/Gestion-api/internal/application/schedule"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ schedule.PDFGenerator = (*MarotoAgendaGenerator)(nil)

// MarotoAgendaGenerator implementa schedule.PDFGenerator usando Maroto v2.
type MarotoAgendaGenerator struct{}

// NewMarotoAgendaGenerator construye el generador.
func NewMarotoAgendaGenerator() *MarotoAgendaGenerator { return &MarotoAgendaGenerator{} }

// DayAgendaReport genera el PDF de la agenda del día y devuelve sus bytes.
func (g *MarotoAgendaGenerator) DayAgendaReport(
	company *entity.Company,
	day time.Time,
	schedules []*entity.Schedule,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Agenda del día", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, day))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(schedules) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin reservas para este día", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range tableRows(schedules) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(company, day, schedules))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y fecha del día (der).
func headerRow(company *entity.Company, day time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Agenda del día", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(day.UTC().Format("Monday 02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4,
			}),
			text.New(fmt.Sprintf("Aforo máximo: %d personas", company.MaxCapacity), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de reservas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Hora", 2, align.Left),
		h("Contacto", 5, align.Left),
		h("Adultos", 1, align.Center),
		h("Niños", 1, align.Center),
		h("Estado", 3, align.Center),
	)
}

// tableRows: una fila por reserva, en orden de horario.
func tableRows(schedules []*entity.Schedule) []core.Row {
	result := make([]core.Row, 0, len(schedules))
	for _, s := range schedules {
		hora := fmt.Sprintf("%s – %s",
			s.StartDate.UTC().Format("15:04"),
			s.EndDate.UTC().Format("15:04"),
		)
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(hora, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(5).Add(text.New(s.Contact, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", s.AdultsAmount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", s.KidsAmount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(statusLabel(s.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// summaryRow: total de reservas y de personas que consumen aforo.
func summaryRow(company *entity.Company, day time.Time, schedules []*entity.Schedule) core.Row {
	total := 0
	persons := 0
	for _, s := range schedules {
		total++
		if s.CountsTowardCapacity() {
			persons += s.PartySize()
		}
	}
	remaining := company.MaxCapacity - persons

	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d reservas  |  %d personas  |  aforo restante: %d",
				total, persons, remaining), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
				Color: colorPrimary,
			}),
		),
	)
}

func statusLabel(status string) string {
	switch status {
	case entity.ScheduleStatusPending:
		return "Pendiente"
	case entity.ScheduleStatusReady:
		return "Recibida"
	case entity.ScheduleStatusFinished:
		return "Finalizada"
	case entity.ScheduleStatusCanceled:
		return "Cancelada"
	default:
		return status
	}
}
