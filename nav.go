package main

import "time"

// navState tracks the displayed month, the selected date and the view
// mode. Transitions are value methods returning the next state, so the
// type stays trivially testable. refMonth is always anchored to the
// first day of its month; week and day navigation re-derive it from the
// new selected date so that switching back to month view shows the
// right page.
type navState struct {
	view     viewMode
	refMonth time.Time
	selected time.Time
}

func newNavState(now time.Time) navState {
	return navState{
		view:     viewMonth,
		refMonth: startOfMonth(now),
		selected: now,
	}
}

// advance moves forward by one unit of the current view.
func (s navState) advance() navState {
	switch s.view {
	case viewWeek:
		return s.setSelectedDate(s.selected.AddDate(0, 0, 7))
	case viewDay:
		return s.setSelectedDate(s.selected.AddDate(0, 0, 1))
	default:
		s.refMonth = s.refMonth.AddDate(0, 1, 0)
		return s
	}
}

// retreat moves backward by one unit of the current view.
func (s navState) retreat() navState {
	switch s.view {
	case viewWeek:
		return s.setSelectedDate(s.selected.AddDate(0, 0, -7))
	case viewDay:
		return s.setSelectedDate(s.selected.AddDate(0, 0, -1))
	default:
		s.refMonth = s.refMonth.AddDate(0, -1, 0)
		return s
	}
}

func (s navState) goToToday(now time.Time) navState {
	s.refMonth = startOfMonth(now)
	s.selected = now
	return s
}

// setView switches the display mode without touching any date.
func (s navState) setView(v viewMode) navState {
	s.view = v
	return s
}

// setSelectedDate selects a date and re-anchors the reference month to
// the month containing it.
func (s navState) setSelectedDate(d time.Time) navState {
	s.selected = d
	s.refMonth = startOfMonth(d)
	return s
}
