package recur

import "time"

// Dates projects a weekly recurrence forward from anchor. Starting at the
// first date on or after anchor's calendar date that falls on weekday, it
// steps 7 days at a time and collects every date up to and including end's
// calendar date. Each returned value keeps anchor's time-of-day.
//
// If end is not strictly after anchor the result is empty; callers must treat
// that as a validation failure rather than a successful no-op.
func Dates(anchor, end time.Time, weekday time.Weekday) []time.Time {
	if !end.After(anchor) {
		return nil
	}

	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, anchor.Location())

	// Align to the first occurrence of the target weekday. In practice the
	// weekday is derived from the anchor itself, so this loop does not move.
	current := anchor
	for current.Weekday() != weekday {
		current = current.AddDate(0, 0, 1)
	}

	var dates []time.Time
	for {
		day := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, anchor.Location())
		if day.After(endDay) {
			break
		}
		dates = append(dates, current)
		current = current.AddDate(0, 0, 7)
	}

	return dates
}
