package domain

import (
	"strings"
	"time"
)

// Severity is the provider's alert severity. Values outside the known set
// are tolerated and fall through to neutral styling.
type Severity string

// Severity values as sent by the provider, worst first.
const (
	SeverityExtreme  Severity = "Extreme"
	SeveritySevere   Severity = "Severe"
	SeverityModerate Severity = "Moderate"
	SeverityMinor    Severity = "Minor"
)

// Alert is one active weather advisory from the alerts feed. Fields hold
// the provider's raw text; truncation and formatting happen at render time.
type Alert struct {
	Event    string
	Severity Severity
	Area     string
	Expires  string
}

// Color returns the display color for the severity, muted when unrecognized.
func (s Severity) Color() Color {
	switch s {
	case SeverityExtreme:
		return Danger
	case SeveritySevere:
		return Warn
	case SeverityModerate:
		return Gold
	case SeverityMinor:
		return Safe
	default:
		return Muted
	}
}

// Label returns the Spanish display label for the severity. Unknown values
// pass through as-is so new provider severities still render something;
// empty input becomes the "--" no-data marker.
func (s Severity) Label() string {
	switch s {
	case SeverityExtreme:
		return "EXTREMO"
	case SeveritySevere:
		return "SEVERO"
	case SeverityModerate:
		return "MODERADO"
	case SeverityMinor:
		return "MENOR"
	case "":
		return "--"
	default:
		return string(s)
	}
}

// PrimaryArea returns the first segment of the provider's semicolon-joined
// area description.
func (a Alert) PrimaryArea() string {
	if i := strings.IndexByte(a.Area, ';'); i >= 0 {
		return a.Area[:i]
	}
	return a.Area
}

// FormatExpires renders a provider expiration timestamp for the alerts
// table: the wall-clock prefix is read as-is, shifted to the fixed AST
// offset, and printed as "26/08 02:00 PM". Unparseable input falls back to
// its date prefix, and empty input to "--".
func FormatExpires(raw string) string {
	if raw == "" {
		return "--"
	}
	if len(raw) >= 19 {
		if t, err := time.Parse("2006-01-02T15:04:05", raw[:19]); err == nil {
			return t.Add(-4 * time.Hour).Format("02/01 03:04 PM")
		}
	}
	if len(raw) > 10 {
		return raw[:10]
	}
	return raw
}
