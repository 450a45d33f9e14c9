package domain

import "time"

// ReportRecord is the flat run summary consumed by the dashboard. The JSON
// field names are the dashboard's contract; do not rename them. RainPct is
// a pointer so a run with no estimate serializes as null rather than 0.
type ReportRecord struct {
	Date         string `json:"fecha"`
	Time         string `json:"hora"`
	File         string `json:"archivo"`
	TotalAlerts  int    `json:"alertas_total"`
	FloodAlerts  int    `json:"alertas_inundacion"`
	MarineAlerts int    `json:"alertas_marinas"`
	RainPct      *int   `json:"lluvia_hoy_pct"`
	Risk         string `json:"riesgo"`
	GeneratedUTC string `json:"generado_utc"`
}

// ArchiveName returns the date-stamped PDF filename for a run date.
func ArchiveName(t time.Time) string {
	return "Reporte_Meteorologico_Arecibo_" + FormatFileDate(t) + ".pdf"
}

// NewReportRecord assembles the summary record for a completed run.
// nowAST is the run instant in AST; the generation timestamp is stamped
// separately in UTC from the active clock.
func NewReportRecord(nowAST time.Time, totalAlerts int, s RiskSummary) ReportRecord {
	return ReportRecord{
		Date:         FormatLongDate(nowAST),
		Time:         FormatClock(nowAST),
		File:         ArchiveName(nowAST),
		TotalAlerts:  totalAlerts,
		FloodAlerts:  len(s.FloodAlerts),
		MarineAlerts: len(s.MarineAlerts),
		RainPct:      s.RainPct,
		Risk:         string(s.FloodRisk),
		GeneratedUTC: Now().Format(time.RFC3339),
	}
}
