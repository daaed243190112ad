package main

import "time"

// The grid uses a Sunday week start throughout. monthGridDays and
// weekDays must share the convention or date-to-cell mapping in the
// week view drifts off the month view by a column.

// maxMonthCellEvents is how many chips fit in a month cell before the
// remainder collapses into a "+N more" line.
const maxMonthCellEvents = 3

// monthGridDays returns every cell date of the month grid for the month
// containing ref: from the Sunday on or before the 1st through the
// Saturday on or after the last day, ascending, one per day. The length
// is always a multiple of 7.
func monthGridDays(ref time.Time) []time.Time {
	first := startOfMonth(ref)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))

	last := first.AddDate(0, 1, -1)
	gridEnd := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []time.Time
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// weekDays returns the 7 days of the Sunday-start week containing selected.
func weekDays(selected time.Time) []time.Time {
	start := selected.AddDate(0, 0, -int(selected.Weekday()))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// sameDay compares calendar days in local display time.
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func sameMonth(a, b time.Time) bool {
	y1, m1, _ := a.Local().Date()
	y2, m2, _ := b.Local().Date()
	return y1 == y2 && m1 == m2
}

// isAllDay reports whether an event spans at least 24 hours. The
// classification is purely duration-based; start and end do not have to
// align to midnight.
func isAllDay(e Event) bool {
	return e.End.Sub(e.Start) >= 24*time.Hour
}

// eventsOnDate returns the events whose start instant falls on the same
// calendar day as date, in collection order.
func eventsOnDate(events []Event, date time.Time) []Event {
	var out []Event
	for _, e := range events {
		if sameDay(e.Start, date) {
			out = append(out, e)
		}
	}
	return out
}

// allDayEventsOn returns the all-day events starting on date. They are
// rendered in their own row, apart from the timed slots.
func allDayEventsOn(events []Event, date time.Time) []Event {
	var out []Event
	for _, e := range events {
		if isAllDay(e) && sameDay(e.Start, date) {
			out = append(out, e)
		}
	}
	return out
}

// eventsInHourSlot returns the timed events starting on date within the
// given hour. An event appears only in the slot of its start hour, no
// matter how long it runs.
func eventsInHourSlot(events []Event, date time.Time, hour int) []Event {
	var out []Event
	for _, e := range events {
		if isAllDay(e) {
			continue
		}
		if sameDay(e.Start, date) && e.Start.Local().Hour() == hour {
			out = append(out, e)
		}
	}
	return out
}

// eventsInHalfHourSlot narrows eventsInHourSlot to one of the two
// 30-minute buckets of the hour (half is 0 or 1).
func eventsInHalfHourSlot(events []Event, date time.Time, hour, half int) []Event {
	lo := half * 30
	hi := lo + 30

	var out []Event
	for _, e := range eventsInHourSlot(events, date, hour) {
		if min := e.Start.Local().Minute(); min >= lo && min < hi {
			out = append(out, e)
		}
	}
	return out
}

// splitCellOverflow partitions a month cell's events into the chips that
// are shown and the count folded into the "+N more" line.
func splitCellOverflow(events []Event) (visible []Event, more int) {
	if len(events) <= maxMonthCellEvents {
		return events, 0
	}
	return events[:maxMonthCellEvents], len(events) - maxMonthCellEvents
}
