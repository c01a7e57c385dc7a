// Package dates computes event dates and formats them in Spanish.
package dates

import (
	"fmt"
	"time"
)

var spanishDays = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

var spanishMonths = map[time.Month]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// NextOrSame returns from itself when it already falls on day, otherwise
// the next occurrence of day.
func NextOrSame(day time.Weekday, from time.Time) time.Time {
	delta := (int(day) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, delta)
}

// FormatFull renders a date as "lunes 2 de septiembre".
func FormatFull(t time.Time) string {
	return fmt.Sprintf("%s %d de %s", spanishDays[t.Weekday()], t.Day(), spanishMonths[t.Month()])
}

// FormatShort renders a date as "2 de septiembre".
func FormatShort(t time.Time) string {
	return fmt.Sprintf("%d de %s", t.Day(), spanishMonths[t.Month()])
}

// DynamaxMonday returns the formatted date of the current or next Monday.
func DynamaxMonday(from time.Time) string {
	return FormatFull(NextOrSame(time.Monday, from))
}

// SpotlightTuesday returns the formatted date of the current or next Tuesday.
func SpotlightTuesday(from time.Time) string {
	return FormatFull(NextOrSame(time.Tuesday, from))
}

// LegendaryHour returns the formatted date for a legendary hour on the
// chosen day, 1 meaning Monday through 7 meaning Sunday.
func LegendaryHour(dayChoice int, from time.Time) (string, error) {
	if dayChoice < 1 || dayChoice > 7 {
		return "", fmt.Errorf("day choice %d out of range, want 1 (lunes) through 7 (domingo)", dayChoice)
	}
	// 1-based Monday-first to time.Weekday, where Sunday is 0.
	day := time.Weekday(dayChoice % 7)
	return FormatFull(NextOrSame(day, from)), nil
}

// WeekendEvent returns the formatted date for a weekend event, 1 meaning
// Saturday and 2 meaning Sunday.
func WeekendEvent(dayChoice int, from time.Time) (string, error) {
	switch dayChoice {
	case 1:
		return FormatFull(NextOrSame(time.Saturday, from)), nil
	case 2:
		return FormatFull(NextOrSame(time.Sunday, from)), nil
	default:
		return "", fmt.Errorf("day choice %d out of range, want 1 (sábado) or 2 (domingo)", dayChoice)
	}
}
