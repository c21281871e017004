// Package datetime holds the schedule helpers used by event pages: whether an
// event is running or over, and how its dates are shown to people.
package datetime

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// LocaleLayout renders a full date and time with a long month name.
	LocaleLayout = "January 2, 2006 at 3:04 PM MST"
	isoLayout    = "2006-01-02T15:04:05.000Z"

	NoScheduleText = "No schedule information"
)

// DateTime is the display bundle for a single timestamp.
type DateTime struct {
	Base     time.Time `json:"base"`
	ISO      string    `json:"iso"`
	Locale   string    `json:"locale"`
	Relative string    `json:"relative"`
}

// HasStarted reports whether now falls within [start, end).
// A nil result means the schedule is unknown.
func HasStarted(start, end *time.Time, now time.Time) *bool {
	if !isSet(start) || !isSet(end) {
		return nil
	}

	started := !now.Before(*start) && now.Before(*end)
	return &started
}

// HasEnded reports whether now is strictly after end.
// A nil result means the schedule is unknown.
func HasEnded(end *time.Time, now time.Time) *bool {
	if !isSet(end) {
		return nil
	}

	ended := now.After(*end)
	return &ended
}

// FormatRange renders "<start> to <end>" in the locale layout.
func FormatRange(start, end *time.Time) string {
	if !isSet(start) || !isSet(end) {
		return NoScheduleText
	}

	return Locale(*start) + " to " + Locale(*end)
}

func Locale(t time.Time) string {
	return t.Format(LocaleLayout)
}

// Build returns the display bundle for t, or nil when t is absent.
func Build(t *time.Time, now time.Time) *DateTime {
	if !isSet(t) {
		return nil
	}

	return &DateTime{
		Base:     *t,
		ISO:      t.UTC().Format(isoLayout),
		Locale:   Locale(*t),
		Relative: Relative(*t, now),
	}
}

// FromUnixSeconds renders a stored seconds value in the locale layout.
// Non-positive input yields an empty string.
func FromUnixSeconds(seconds int64) string {
	if seconds <= 0 {
		return ""
	}

	return Locale(time.Unix(seconds, 0).UTC())
}

// Relative describes t against now in calendar units, picking the largest
// unit (year, month, day) in which the two differ.
func Relative(t, now time.Time) string {
	now = now.In(t.Location())

	if years := t.Year() - now.Year(); years != 0 {
		return relativeUnit(years, "year")
	}

	if months := int(t.Month()) - int(now.Month()); months != 0 {
		return relativeUnit(months, "month")
	}

	days := t.Day() - now.Day()
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	case -1:
		return "yesterday"
	}

	return relativeUnit(days, "day")
}

func relativeUnit(n int, unit string) string {
	switch {
	case n == 1 && unit != "day":
		return "next " + unit
	case n == -1 && unit != "day":
		return "last " + unit
	case n > 0:
		return fmt.Sprintf("in %d %ss", n, unit)
	default:
		return fmt.Sprintf("%d %ss ago", -n, unit)
	}
}

// Years returns the years in [min, max) as strings.
func Years(min, max int, reverse bool) []string {
	years := []string{}
	if min < 0 || max < 0 {
		return years
	}

	for y := min; y < max; y++ {
		years = append(years, strconv.Itoa(y))
	}

	if reverse {
		for i, j := 0, len(years)-1; i < j; i, j = i+1, j-1 {
			years[i], years[j] = years[j], years[i]
		}
	}

	return years
}

// Times lists "HH:MM" slots for a whole day. Within each hour the minutes
// start at 0 and advance by increment while they stay at or below 45.
func Times(increment int) []string {
	times := []string{}
	if increment <= 0 {
		return times
	}

	for hour := 0; hour <= 23; hour++ {
		for minutes := 0; minutes <= 45; minutes += increment {
			times = append(times, fmt.Sprintf("%02d:%02d", hour, minutes))
		}
	}

	return times
}

// ClosestTimeByN rounds minutes up to the next multiple of ten and then to a
// multiple of n. Reaching 60 rolls over into the next hour.
func ClosestTimeByN(hour, minutes, n int) string {
	m := ((minutes + 9) / 10) * 10
	if n > 0 {
		for m%n != 0 {
			m++
		}
	}

	if m >= 60 {
		m = 0
		hour++
	}

	return fmt.Sprintf("%d:%02d", hour, m)
}

func isSet(t *time.Time) bool {
	return t != nil && !t.IsZero()
}
