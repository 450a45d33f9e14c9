package domain

import (
	"strconv"
	"strings"
)

// RiskLevel is the overall flood-risk ladder. Values are the Spanish
// display strings written to the summary record, worst first.
type RiskLevel string

const (
	RiskExtreme     RiskLevel = "EXTREMO"
	RiskHigh        RiskLevel = "ALTO"
	RiskModerate    RiskLevel = "MODERADO"
	RiskLowModerate RiskLevel = "BAJO-MOD"
	RiskLow         RiskLevel = "BAJO"
)

// Color returns the display color for the risk level. Both low tiers share
// the safe color.
func (r RiskLevel) Color() Color {
	switch r {
	case RiskExtreme:
		return Danger
	case RiskHigh:
		return Warn
	case RiskModerate:
		return Gold
	default:
		return Safe
	}
}

// RainLevel buckets today's precipitation probability.
type RainLevel string

const (
	RainHigh         RainLevel = "ALTA"
	RainModerateHigh RainLevel = "MODERADA-ALTA"
	RainModerate     RainLevel = "MODERADA"
	RainLow          RainLevel = "BAJA"
)

// Color returns the display color for the rain level.
func (r RainLevel) Color() Color {
	switch r {
	case RainHigh:
		return Danger
	case RainModerateHigh:
		return Warn
	case RainModerate:
		return Gold
	default:
		return Safe
	}
}

// Keyword sets for alert set membership, matched case-insensitively as
// substrings of the event name. "inunda" catches Spanish-worded advisories.
var (
	floodKeywords  = []string{"flood", "flash", "inunda"}
	marineKeywords = []string{"marine", "small craft", "surf", "beach", "rip"}
)

// IsFlood reports whether the alert's event name matches the flood keywords.
func (a Alert) IsFlood() bool {
	return matchesAny(a.Event, floodKeywords)
}

// IsMarine reports whether the alert's event name matches the marine
// keywords. Flood and marine membership are independent; one alert can
// carry both.
func (a Alert) IsMarine() bool {
	return matchesAny(a.Event, marineKeywords)
}

func matchesAny(event string, keywords []string) bool {
	e := strings.ToLower(event)
	for _, k := range keywords {
		if strings.Contains(e, k) {
			return true
		}
	}
	return false
}

// RiskSummary is the classified view of one run's fetched data, computed
// once by Classify and read-only afterward. FloodAlerts and MarineAlerts
// preserve feed order.
type RiskSummary struct {
	FloodRisk    RiskLevel
	Rain         RainLevel
	RainPct      *int
	FloodAlerts  []Alert
	MarineAlerts []Alert
	Today        *ForecastPeriod
}

// Classify derives the risk summary from fetched alerts and forecast
// periods. It is total: any input classifies, including empty slices, and
// adding alerts never lowers the flood risk.
func Classify(alerts []Alert, periods []ForecastPeriod) RiskSummary {
	var flood, marine []Alert
	for _, a := range alerts {
		if a.IsFlood() {
			flood = append(flood, a)
		}
		if a.IsMarine() {
			marine = append(marine, a)
		}
	}

	today := FirstDaytime(periods)
	var pct *int
	if today != nil {
		pct = today.PrecipProb
	}

	return RiskSummary{
		FloodRisk:    floodRisk(flood, len(alerts)),
		Rain:         RainBucket(pct),
		RainPct:      pct,
		FloodAlerts:  flood,
		MarineAlerts: marine,
		Today:        today,
	}
}

// floodRisk walks the priority ladder; the first matching rung wins.
func floodRisk(flood []Alert, totalAlerts int) RiskLevel {
	switch {
	case hasSeverity(flood, SeverityExtreme):
		return RiskExtreme
	case hasSeverity(flood, SeveritySevere):
		return RiskHigh
	case len(flood) > 0:
		return RiskModerate
	case totalAlerts > 0:
		return RiskLowModerate
	default:
		return RiskLow
	}
}

func hasSeverity(alerts []Alert, sev Severity) bool {
	for _, a := range alerts {
		if a.Severity == sev {
			return true
		}
	}
	return false
}

// RainBucket maps a precipitation probability to its level. Thresholds are
// inclusive at the lower bound, so exactly 80 is ALTA and 79 is
// MODERADA-ALTA. A missing value is the lowest bucket.
func RainBucket(pct *int) RainLevel {
	switch {
	case pct != nil && *pct >= 80:
		return RainHigh
	case pct != nil && *pct >= 60:
		return RainModerateHigh
	case pct != nil && *pct >= 40:
		return RainModerate
	default:
		return RainLow
	}
}

// RainDisplay renders a probability for tables: "85%", "0%", or the "--"
// no-data marker when the provider gave no estimate.
func RainDisplay(pct *int) string {
	if pct == nil {
		return "--"
	}
	return strconv.Itoa(*pct) + "%"
}
