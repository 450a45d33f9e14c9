package domain

import (
	"fmt"
	"time"
)

// AST is the fixed Puerto Rico offset applied to every displayed timestamp.
// Puerto Rico does not observe daylight saving, so a fixed zone is exact
// year-round.
var AST = time.FixedZone("AST", -4*60*60)

// Spanish calendar names, unaccented so the core PDF fonts cover them.
// Weekday tables are Monday-first; see mondayIndex.
var (
	weekdaysLong  = [7]string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}
	weekdaysShort = [7]string{"Lun", "Mar", "Mie", "Jue", "Vie", "Sab", "Dom"}
	monthsLong    = [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
)

// mondayIndex converts time.Weekday (Sunday=0) to a Monday-first table index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// FormatLongDate renders t as a long Spanish date, lowercase as is
// conventional: "lunes, 25 de agosto de 2025".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdaysLong[mondayIndex(t.Weekday())], t.Day(), monthsLong[t.Month()-1], t.Year())
}

// FormatClock renders t as a 12-hour clock stamped with the fixed zone
// label: "06:00 AM AST". The caller passes a time already in AST.
func FormatClock(t time.Time) string {
	return t.Format("03:04 PM") + " AST"
}

// FormatFileDate renders t as the ISO date used in artifact names.
func FormatFileDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayLabel derives the short weekday label for a forecast table row from a
// raw provider start timestamp: "Lun 25/08". Unparseable input falls back
// to the given period name, or "--" when that is empty too.
func DayLabel(startTime, name string) string {
	if len(startTime) < 10 {
		return nameOrDash(name)
	}
	d, err := time.Parse("2006-01-02", startTime[:10])
	if err != nil {
		return nameOrDash(name)
	}
	return fmt.Sprintf("%s %s", weekdaysShort[mondayIndex(d.Weekday())], d.Format("02/01"))
}

func nameOrDash(name string) string {
	if name == "" {
		return "--"
	}
	return name
}
