// Package pdf implementa el reporte de reposición de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título  │  Fecha de generación                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK BAJO: Producto | Estante | Cant. | Mín. | Pedir       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENCIMIENTOS: Producto | Estante | Vence | Días             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECORDATORIOS: Prioridad | Producto | Nota                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

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

	"github.com/jhoicas/storesage/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReorderReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReorderReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReorderReport(data dto.ReorderReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Stock bajo
	m.AddRows(sectionTitleRow(fmt.Sprintf("STOCK BAJO (%d)", len(data.LowStock))))
	if len(data.LowStock) == 0 {
		m.AddRows(emptyRow("Ningún producto por debajo del mínimo."))
	} else {
		m.AddRows(tableHeaderRow([]column{
			{"Producto", 5, align.Left},
			{"Estante", 2, align.Left},
			{"Cant.", 1, align.Right},
			{"Mín.", 2, align.Right},
			{"Pedir", 2, align.Right},
		}))
		for _, r := range lowStockRows(data.LowStock) {
			m.AddRows(r)
		}
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Vencimientos
	m.AddRows(sectionTitleRow(fmt.Sprintf("VENCIDOS O POR VENCER (%d)", len(data.Expiring))))
	if len(data.Expiring) == 0 {
		m.AddRows(emptyRow("Ningún producto vence en los próximos días."))
	} else {
		m.AddRows(tableHeaderRow([]column{
			{"Producto", 5, align.Left},
			{"Estante", 2, align.Left},
			{"Vence", 3, align.Center},
			{"Días", 2, align.Right},
		}))
		for _, r := range expiringRows(data.Expiring) {
			m.AddRows(r)
		}
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Recordatorios
	m.AddRows(sectionTitleRow(fmt.Sprintf("RECORDATORIOS (%d)", len(data.Reminders))))
	if len(data.Reminders) == 0 {
		m.AddRows(emptyRow("Sin recordatorios abiertos."))
	} else {
		m.AddRows(tableHeaderRow([]column{
			{"Prioridad", 2, align.Left},
			{"Producto", 3, align.Left},
			{"Nota", 7, align.Left},
		}))
		for _, r := range reminderRows(data.Reminders) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(data dto.ReorderReportData) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(data.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

type column struct {
	label     string
	size      int
	alignment align.Type
}

func tableHeaderRow(cols []column) core.Row {
	r := row.New(7)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.alignment, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

// cell texto de una celda de detalle.
func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

// lowStockRows: una fila por producto bajo el mínimo, con la cantidad sugerida resaltada.
func lowStockRows(lines []dto.ReorderLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			cell(l.Name, 5, align.Left),
			cell(l.ShelfNumber, 2, align.Left),
			cell(formatThousands(l.Quantity), 1, align.Right),
			cell(formatThousands(l.MinQuantity), 2, align.Right),
			col.New(2).Add(text.New(formatThousands(l.SuggestedQty), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorPrimary,
			})),
		))
	}
	return result
}

// expiringRows: los productos ya vencidos se resaltan en rojo.
func expiringRows(lines []dto.ExpiringLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		days := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		label := strconv.Itoa(l.DaysToExpire)
		if l.DaysToExpire < 0 {
			days.Style = fontstyle.Bold
			days.Color = colorAlert
			label = "vencido"
		}
		result = append(result, row.New(6).Add(
			cell(l.Name, 5, align.Left),
			cell(l.ShelfNumber, 2, align.Left),
			cell(l.ExpirationDate.Format("02/01/2006"), 3, align.Center),
			col.New(2).Add(text.New(label, days)),
		))
	}
	return result
}

func reminderRows(reminders []dto.ReminderResponse) []core.Row {
	result := make([]core.Row, 0, len(reminders))
	for _, r := range reminders {
		result = append(result, row.New(6).Add(
			cell(priorityLabel(r.Priority), 2, align.Left),
			cell(r.ProductName, 3, align.Left),
			cell(r.Note, 7, align.Left),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func priorityLabel(p string) string {
	switch p {
	case "high":
		return "Alta"
	case "low":
		return "Baja"
	default:
		return "Media"
	}
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	l := len(s)
	if l <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, l+l/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
