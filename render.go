package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// --- Styles ---

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	weekdayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	todayStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("27"))
	moreStyle    = lipgloss.NewStyle().Faint(true)
	allDayStyle  = lipgloss.NewStyle().Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	monthCellWidth  = 18
	monthCellHeight = 5
	weekColWidth    = 14
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func chipStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func clip(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// renderMonth draws the month grid: weekday header, one row per week,
// dimmed out-of-month days, highlighted today, up to three event chips
// per cell and a "+N more" line for the rest.
func renderMonth(events []Event, nav navState, now time.Time) string {
	days := monthGridDays(nav.refMonth)

	var header []string
	for _, name := range weekdayNames {
		header = append(header, weekdayStyle.Width(monthCellWidth).Align(lipgloss.Center).Render(name))
	}

	rows := []string{
		titleStyle.Render(monthTitle(nav.refMonth)),
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
	}

	cellStyle := lipgloss.NewStyle().Width(monthCellWidth).Height(monthCellHeight).Padding(0, 1)

	for week := 0; week < len(days); week += 7 {
		var cells []string
		for _, day := range days[week : week+7] {
			cells = append(cells, cellStyle.Render(renderMonthCell(events, day, nav.refMonth, now)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderMonthCell(events []Event, day, refMonth time.Time, now time.Time) string {
	number := fmt.Sprintf("%2d", day.Day())
	switch {
	case sameDay(day, now):
		number = todayStyle.Render(number)
	case !sameMonth(day, refMonth):
		number = dimStyle.Render(number)
	}

	lines := []string{number}

	visible, more := splitCellOverflow(eventsOnDate(events, day))
	for _, e := range visible {
		chip := clip(formatClock(e.Start)+" "+e.Title, monthCellWidth-2)
		lines = append(lines, chipStyle(e.Color).Render(chip))
	}
	if more > 0 {
		lines = append(lines, moreStyle.Render(fmt.Sprintf("+%d more", more)))
	}

	return strings.Join(lines, "\n")
}

// renderWeek draws the week view: a day header row, a separate all-day
// row, then one row per hour with events placed by start hour only.
func renderWeek(events []Event, nav navState, now time.Time) string {
	days := weekDays(nav.selected)

	var b strings.Builder
	b.WriteString(titleStyle.Render(weekTitle(days)))
	b.WriteString("\n")

	// day header
	b.WriteString(pad("", 9))
	for _, day := range days {
		label := fmt.Sprintf("%s %d", weekdayNames[int(day.Weekday())], day.Day())
		if sameDay(day, now) {
			label = todayStyle.Render(pad(label, weekColWidth))
		} else {
			label = weekdayStyle.Render(pad(label, weekColWidth))
		}
		b.WriteString(label)
	}
	b.WriteString("\n")

	// all-day row
	b.WriteString(allDayStyle.Render(pad("All-day", 9)))
	for _, day := range days {
		var titles []string
		for _, e := range allDayEventsOn(events, day) {
			titles = append(titles, e.Title)
		}
		cell := clip(strings.Join(titles, ", "), weekColWidth-1)
		b.WriteString(pad(cell, weekColWidth))
	}
	b.WriteString("\n")

	// hour rows
	for hour := 0; hour < 24; hour++ {
		b.WriteString(dimStyle.Render(pad(hourLabel(hour), 9)))
		for _, day := range days {
			slot := eventsInHourSlot(events, day, hour)
			var chips []string
			for _, e := range slot {
				chips = append(chips, e.Title)
			}
			cell := clip(strings.Join(chips, ", "), weekColWidth-1)
			if len(slot) > 0 {
				cell = chipStyle(slot[0].Color).Render(pad(cell, weekColWidth))
			} else {
				cell = pad(cell, weekColWidth)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderDay draws the day view: an all-day section, then 48 half-hour
// rows. Events show their full start and end time since a long event
// still occupies only its start slot.
func renderDay(events []Event, nav navState, now time.Time) string {
	day := nav.selected

	var b strings.Builder
	b.WriteString(titleStyle.Render(dayTitle(day)))
	b.WriteString("\n")

	if allDay := allDayEventsOn(events, day); len(allDay) > 0 {
		b.WriteString(allDayStyle.Render("All-day"))
		b.WriteString("\n")
		for _, e := range allDay {
			b.WriteString("  " + chipStyle(e.Color).Render(e.Title))
			if e.Description != "" {
				b.WriteString(dimStyle.Render("  " + e.Description))
			}
			b.WriteString("\n")
		}
	}

	for hour := 0; hour < 24; hour++ {
		for half := 0; half < 2; half++ {
			label := ""
			if half == 0 {
				label = hourLabel(hour)
			}
			b.WriteString(dimStyle.Render(pad(label, 9)))

			var chips []string
			for _, e := range eventsInHalfHourSlot(events, day, hour, half) {
				chip := fmt.Sprintf("%s (%s – %s)", e.Title, formatClock(e.Start), formatClock(e.End))
				if e.Description != "" {
					chip += "  " + e.Description
				}
				chips = append(chips, chipStyle(e.Color).Render(chip))
			}
			b.WriteString(strings.Join(chips, "  "))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// pad right-pads s with spaces to width, clipping when too long.
func pad(s string, width int) string {
	s = clip(s, width)
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
