// Package dateparse resolves date phrases into concrete calendar ranges.
//
// The vocabulary mirrors what a Swedish-speaking user asks a chat model:
// relative terms in Swedish and English ("igår", "last week", "denna månad"),
// bare Swedish month names, and a handful of literal date formats. Resolution
// is a pure function of (phrase, today), so results are deterministic and
// independently testable from the journal logic that consumes them.
package dateparse

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// literalLayouts are the accepted explicit date formats, tried in order.
var literalLayouts = []string{
	dateLayout,
	"02/01/2006",
	"02-01-2006",
	"20060102",
}

var swedishMonths = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"mars":      time.March,
	"april":     time.April,
	"maj":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"augusti":   time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// Resolve maps a date phrase to an inclusive calendar range [start, end].
// Both bounds are midnight in today's location. A single-day phrase such as
// "igår" yields start == end. Ambiguous phrases resolve to the most recent
// matching period that has already begun; open-ended periods ("this month")
// are capped at today. An empty phrase resolves to the last seven days.
// Unknown phrases return an error.
func Resolve(phrase string, today time.Time) (start, end time.Time, err error) {
	today = midnight(today)
	low := strings.ToLower(strings.TrimSpace(phrase))

	switch low {
	case "":
		return today.AddDate(0, 0, -7), today, nil
	case "idag", "today":
		return today, today, nil
	case "igår", "yesterday":
		y := today.AddDate(0, 0, -1)
		return y, y, nil
	case "senaste veckan", "last week", "förra veckan", "denna vecka", "this week":
		return today.AddDate(0, 0, -7), today, nil
	case "senaste månaden", "last month", "denna månad", "denna månaden", "this month":
		return firstOfMonth(today), today, nil
	case "förra månaden", "previous month":
		firstThis := firstOfMonth(today)
		lastPrev := firstThis.AddDate(0, 0, -1)
		return firstOfMonth(lastPrev), lastPrev, nil
	case "i år", "this year", "året", "hela året":
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()), today, nil
	}

	for _, layout := range literalLayouts {
		if d, perr := time.ParseInLocation(layout, low, today.Location()); perr == nil {
			d = midnight(d)
			return d, d, nil
		}
	}

	for name, month := range swedishMonths {
		if strings.Contains(low, name) {
			return monthRange(month, today)
		}
	}

	return time.Time{}, time.Time{}, fmt.Errorf("dateparse: unrecognized date phrase %q", phrase)
}

// monthRange returns the most recent occurrence of the named month that has
// already begun: this year when the month has started, otherwise last year.
// The range covers the whole month, capped at today for the current month.
func monthRange(month time.Month, today time.Time) (time.Time, time.Time, error) {
	year := today.Year()
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	if first.After(today) {
		first = first.AddDate(-1, 0, 0)
	}
	last := first.AddDate(0, 1, -1)
	if last.After(today) {
		last = today
	}
	return first, last, nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
