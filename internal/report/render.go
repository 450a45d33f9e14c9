package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/domain"
)

// Hard rune cutoffs that keep each column inside its fixed width, and the
// row caps that keep every edition to a predictable length.
const (
	maxEventLen     = 38
	maxAreaLen      = 32
	maxShortLen     = 45
	maxDetailLen    = 300
	maxAlertRows    = 14
	maxForecastDays = 7
)

// Input carries everything Assemble needs for one run. Alerts and Periods
// are the post-substitution slices (never nil), Summary their
// classification, Now the run instant in AST.
type Input struct {
	Now     time.Time
	Alerts  []domain.Alert
	Periods []domain.ForecastPeriod
	Summary domain.RiskSummary
}

// Assemble builds the full document flow for a run. Assembly is total: any
// input produces a complete document, including a fully offline run with
// no data at all.
func Assemble(in Input) Document {
	dateStr := domain.FormatLongDate(in.Now)

	blocks := []Block{
		Header{
			Title:    "MONITOR METEOROLOGICO",
			Subtitle: "Arecibo, Puerto Rico  -  18.4736N 66.7220W  -  NWS San Juan",
			DateLine: strings.ToUpper(dateStr),
			TimeLine: "Generado: " + domain.FormatClock(in.Now),
			TagLine:  "Reporte automatico - GitHub Actions",
		},
		Spacer{12},
	}
	blocks = append(blocks, summarySection(in)...)
	blocks = append(blocks, alertsSection(in.Alerts)...)
	blocks = append(blocks, riversSection(in.Summary)...)
	blocks = append(blocks, forecastSection(in.Periods, in.Summary.Today)...)
	blocks = append(blocks, marineSection()...)
	blocks = append(blocks, contactsSection()...)
	blocks = append(blocks, Footer{Text: disclaimer})

	return Document{
		Title:  "Reporte Meteorologico Arecibo " + dateStr,
		Author: "Monitor Meteorologico Arecibo / NWS San Juan",
		Blocks: blocks,
	}
}

func summarySection(in Input) []Block {
	s := in.Summary

	marineState, marineColor := "SIN ALERTA", domain.Safe
	if len(s.MarineAlerts) > 0 {
		marineState, marineColor = "AVISO VIGENTE", domain.Warn
	}
	totalColor := domain.Safe
	if len(in.Alerts) > 0 {
		totalColor = domain.Danger
	}

	rows := [][]Cell{
		{label("Riesgo Inundacion"), strong(string(s.FloodRisk), s.FloodRisk.Color()), cell(countAlerts(len(s.FloodAlerts)))},
		{label("Prob. Lluvia Hoy"), strong(domain.RainDisplay(s.RainPct), s.Rain.Color()), cell(string(s.Rain))},
		{label("Alertas Marinas"), strong(marineState, marineColor), cell(countAlerts(len(s.MarineAlerts)))},
		{label("Total Alertas PR"), strong(strconv.Itoa(len(in.Alerts)), totalColor), cell("weather.gov/sju")},
	}

	return []Block{
		SectionTitle{"RESUMEN EJECUTIVO", domain.Cyan},
		Rule{domain.Cyan},
		Table{
			Head:      []string{"INDICADOR", "ESTADO", "VALOR"},
			HeadColor: domain.Cyan,
			Widths:    []float64{2.4, 2.0, 2.8},
			Rows:      rows,
		},
		Spacer{12},
	}
}

func alertsSection(alerts []domain.Alert) []Block {
	accent := domain.Safe
	if len(alerts) > 0 {
		accent = domain.Danger
	}
	blocks := []Block{
		SectionTitle{"ALERTAS ACTIVAS - PUERTO RICO", accent},
		Rule{accent},
	}

	if len(alerts) == 0 {
		blocks = append(blocks, Paragraph{
			Text:  "Sin alertas activas en este momento para Puerto Rico.",
			Color: domain.Safe,
			Size:  9,
		})
		return append(blocks, Spacer{10})
	}

	capped := alerts
	if len(capped) > maxAlertRows {
		capped = capped[:maxAlertRows]
	}
	rows := make([][]Cell, 0, len(capped))
	for _, a := range capped {
		rows = append(rows, []Cell{
			cell(truncate(a.Event, maxEventLen)),
			strong(a.Severity.Label(), a.Severity.Color()),
			cell(truncate(a.PrimaryArea(), maxAreaLen)),
			cell(domain.FormatExpires(a.Expires)),
		})
	}
	blocks = append(blocks, Table{
		Head:      []string{"EVENTO", "SEVERIDAD", "AREA", "EXPIRA"},
		HeadColor: domain.Danger,
		Widths:    []float64{2.7, 0.85, 2.1, 1.05},
		Rows:      rows,
	})
	return append(blocks, Spacer{10})
}

func riversSection(s domain.RiskSummary) []Block {
	rows := make([][]Cell, 0, len(riverRows)+1)
	for _, r := range riverRows {
		rows = append(rows, []Cell{label(r[0]), cell(r[1]), cell(r[2]), link(r[3])})
	}

	// Live row: flash-flood count from this run's classification.
	state := cell(fmt.Sprintf("%d activa(s)", len(s.FloodAlerts)))
	if len(s.FloodAlerts) > 0 {
		state = strong(state.Text, domain.Danger)
	}
	rows = append(rows, []Cell{label("Alertas Flash Flood"), cell("--"), state, link("api.weather.gov")})

	return []Block{
		SectionTitle{"INUNDACIONES Y RIOS - AREA ARECIBO", domain.Cyan},
		Rule{domain.Cyan},
		Table{
			Head:      []string{"ESTACION", "CODIGO", "ESTADO", "ENLACE"},
			HeadColor: domain.Teal,
			Widths:    []float64{2.3, 0.85, 1.65, 1.9},
			Rows:      rows,
		},
		Spacer{10},
	}
}

func forecastSection(periods []domain.ForecastPeriod, today *domain.ForecastPeriod) []Block {
	blocks := []Block{
		SectionTitle{"PRONOSTICO 7 DIAS - ARECIBO, PR", domain.Cyan},
		Rule{domain.Cyan},
	}

	if len(periods) == 0 {
		blocks = append(blocks, Paragraph{
			Text:  "No se pudo obtener pronostico. Consulte: forecast.weather.gov",
			Color: domain.Warn,
			Size:  9,
		})
		return append(blocks, Spacer{10})
	}

	days := domain.Daytime(periods)
	if len(days) > maxForecastDays {
		days = days[:maxForecastDays]
	}
	rows := make([][]Cell, 0, len(days))
	for _, p := range days {
		short := p.ShortForecast
		if short == "" {
			short = "--"
		}
		rows = append(rows, []Cell{
			cell(p.DayLabel()),
			cell(p.TempDisplay()),
			strong(domain.RainDisplay(p.PrecipProb), domain.RainBucket(p.PrecipProb).Color()),
			cell(truncate(domain.Translate(short), maxShortLen)),
		})
	}
	blocks = append(blocks, Table{
		Head:      []string{"DIA", "TEMP", "LLUVIA", "CONDICION"},
		HeadColor: domain.Cyan,
		Widths:    []float64{0.95, 0.75, 0.75, 4.3},
		Rows:      rows,
	})

	if today != nil {
		blocks = append(blocks,
			Spacer{6},
			Paragraph{Text: "DETALLE HOY:", Color: domain.Muted, Size: 8, Bold: true},
			Paragraph{Text: truncate(domain.Translate(today.DetailedForecast), maxDetailLen), Color: domain.Light, Size: 8, Mono: true},
		)
	}
	return append(blocks, Spacer{10})
}

func marineSection() []Block {
	rows := make([][]Cell, 0, len(marineRows))
	for _, r := range marineRows {
		rows = append(rows, []Cell{label(r[0]), cell(r[1]), strong(r[2], domain.Danger)})
	}
	return []Block{
		SectionTitle{"CONDICIONES MARITIMAS - COSTA NORTE PR", domain.Warn},
		Rule{domain.Warn},
		Table{
			Head:      []string{"PARAMETRO", "CONDICION", "NIVEL"},
			HeadColor: domain.Warn,
			Widths:    []float64{2.1, 2.9, 1.75},
			Rows:      rows,
		},
		Spacer{10},
	}
}

func contactsSection() []Block {
	rows := make([][]Cell, 0, len(contactRows))
	for _, r := range contactRows {
		rows = append(rows, []Cell{label(r[0]), link(r[1])})
	}
	return []Block{
		SectionTitle{"CONTACTOS DE EMERGENCIA Y RECURSOS", domain.Gold},
		Rule{domain.Gold},
		Table{
			Head:      []string{"RECURSO", "CONTACTO / URL"},
			HeadColor: domain.Gold,
			Widths:    []float64{2.4, 4.35},
			Rows:      rows,
		},
		Spacer{14},
	}
}

func countAlerts(n int) string {
	return fmt.Sprintf("%d alerta(s)", n)
}

func cell(text string) Cell {
	return Cell{Text: text}
}

// label styles a leading key cell: bold, muted.
func label(text string) Cell {
	return Cell{Text: text, Color: colorPtr(domain.Muted), Bold: true}
}

// strong styles a value cell carrying its own status color.
func strong(text string, c domain.Color) Cell {
	return Cell{Text: text, Color: colorPtr(c), Bold: true}
}

// link styles a URL or contact cell in the primary accent.
func link(text string) Cell {
	return Cell{Text: text, Color: colorPtr(domain.Cyan)}
}

func colorPtr(c domain.Color) *domain.Color {
	return &c
}

// truncate hard-cuts s at max runes. Never word-aware: the fixed column
// widths are the constraint, not readability of the tail.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
