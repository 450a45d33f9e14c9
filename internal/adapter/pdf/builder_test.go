package pdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/domain"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/report"
)

const pdfMagic = "%PDF-1."

func buildDoc(t *testing.T, in report.Input) []byte {
	t.Helper()
	out, err := NewBuilder().Build(report.Assemble(in))
	require.NoError(t, err)
	return out
}

func testNow() time.Time {
	return time.Date(2025, 8, 25, 6, 0, 0, 0, domain.AST)
}

func intPtr(v int) *int {
	return &v
}

func TestBuild_ZeroData(t *testing.T) {
	in := report.Input{Now: testNow(), Summary: domain.Classify(nil, nil)}

	out := buildDoc(t, in)

	assert.True(t, bytes.HasPrefix(out, []byte(pdfMagic)), "missing PDF magic")
	assert.True(t, bytes.HasSuffix(bytes.TrimSpace(out), []byte("%%EOF")), "missing PDF trailer")
	assert.Greater(t, len(out), 1000)
}

func TestBuild_FullReport(t *testing.T) {
	alerts := make([]domain.Alert, 0, 20)
	events := []string{"Flash Flood Warning", "Small Craft Advisory", "Heat Advisory", "Rip Current Statement"}
	severities := []domain.Severity{domain.SeverityExtreme, domain.SeverityModerate, domain.SeverityMinor, domain.SeveritySevere}
	for i := 0; i < 20; i++ {
		alerts = append(alerts, domain.Alert{
			Event:    fmt.Sprintf("%s %d", events[i%len(events)], i),
			Severity: severities[i%len(severities)],
			Area:     "Arecibo, PR; Utuado, PR; Hatillo, PR",
			Expires:  "2025-08-26T18:00:00-04:00",
		})
	}

	periods := make([]domain.ForecastPeriod, 0, 14)
	for i := 0; i < 14; i++ {
		day := testNow().AddDate(0, 0, i/2)
		periods = append(periods, domain.ForecastPeriod{
			Name:             fmt.Sprintf("Period %d", i),
			IsDaytime:        i%2 == 0,
			StartTime:        day.Format(time.RFC3339),
			Temperature:      intPtr(88),
			TemperatureUnit:  "F",
			PrecipProb:       intPtr(85),
			ShortForecast:    "Showers And Thunderstorms Likely",
			DetailedForecast: "Showers and thunderstorms likely with heavy rain possible. Chance of precipitation is 85 percent. New rainfall amounts between one and two inches possible. Southeast wind around 10 mph with gusts as high as 20 mph expected throughout the day and into the evening hours across the northern coast.",
		})
	}

	in := report.Input{
		Now:     testNow(),
		Alerts:  alerts,
		Periods: periods,
		Summary: domain.Classify(alerts, periods),
	}

	out := buildDoc(t, in)

	assert.True(t, bytes.HasPrefix(out, []byte(pdfMagic)), "missing PDF magic")
	assert.Greater(t, len(out), 2000)
}

func TestBuild_AllBlockKinds(t *testing.T) {
	accent := domain.Gold
	doc := report.Document{
		Title:  "Reporte de prueba",
		Author: "pruebas",
		Blocks: []report.Block{
			report.Header{
				Title:    "MONITOR METEOROLOGICO",
				Subtitle: "Arecibo, Puerto Rico",
				DateLine: "LUNES, 25 DE AGOSTO DE 2025",
				TimeLine: "Generado: 06:00 AM AST",
				TagLine:  "Reporte automatico",
			},
			report.Spacer{Height: 12},
			report.SectionTitle{Text: "SECCION DE PRUEBA", Color: domain.Cyan},
			report.Rule{Color: domain.Cyan},
			report.Paragraph{Text: "Texto con acentos: año, señal, Río Camuy.", Color: domain.Light},
			report.Paragraph{Text: "DETALLE:", Color: domain.Muted, Size: 8, Bold: true},
			report.Paragraph{Text: "linea monoespaciada centrada", Color: domain.Light, Size: 8, Mono: true, Center: true},
			report.Table{
				Head:      []string{"COLUMNA", "VALOR"},
				HeadColor: domain.Cyan,
				Widths:    []float64{2.5, 4},
				Rows: [][]report.Cell{
					{{Text: "texto plano"}, {Text: "resaltado", Color: &accent, Bold: true}},
					{{Text: "segunda fila"}, {Text: "normal"}},
				},
			},
			report.Footer{Text: "Pie de pagina centrado con una sola linea."},
		},
	}

	out, err := NewBuilder().Build(doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte(pdfMagic)), "missing PDF magic")
}

func TestBuild_LongTablePaginates(t *testing.T) {
	table := func(n int) report.Document {
		rows := make([][]report.Cell, n)
		for i := range rows {
			rows[i] = []report.Cell{{Text: fmt.Sprintf("fila %d", i)}, {Text: "valor"}}
		}
		return report.Document{
			Title:  "paginacion",
			Author: "pruebas",
			Blocks: []report.Block{report.Table{
				Head:      []string{"COLUMNA", "VALOR"},
				HeadColor: domain.Cyan,
				Widths:    []float64{3, 3},
				Rows:      rows,
			}},
		}
	}

	long, err := NewBuilder().Build(table(100))
	require.NoError(t, err)
	short, err := NewBuilder().Build(table(2))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(long, []byte(pdfMagic)), "missing PDF magic")
	assert.Greater(t, len(long), len(short))
}
