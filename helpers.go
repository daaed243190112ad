package main

import (
	"fmt"
	"os"
	"time"
)

func PrintTable(headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	// print header
	for i, header := range headers {
		fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(os.Stdout)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(os.Stdout)
	}

	// print footer
	for i, footer := range footers {
		if footer != "" {
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], footer)
		} else {
			// print empty space for skipped footer
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], "")
		}
	}
	fmt.Fprintln(os.Stdout)
}

// formatClock renders a time like "3:04 PM".
func formatClock(t time.Time) string {
	return t.Local().Format("3:04 PM")
}

// formatDay renders a date like "Mar 4, 2024".
func formatDay(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}

// monthTitle renders a reference month like "March 2024".
func monthTitle(t time.Time) string {
	return t.Format("January 2006")
}

// dayTitle renders a full date like "Monday, March 4, 2024".
func dayTitle(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// weekTitle renders a week's range like "Mar 3 – Mar 9, 2024".
func weekTitle(days []time.Time) string {
	first, last := days[0], days[len(days)-1]
	return fmt.Sprintf("%s – %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))
}

// hourLabel renders an hour like "3 PM".
func hourLabel(hour int) string {
	return time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("3 PM")
}

// userTimeLayouts are the formats accepted by the add/edit commands,
// tried in order.
var userTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseUserTime parses a command-line date/time in local time and
// normalizes it to RFC 3339 for the API.
func parseUserTime(s string) (string, error) {
	for _, layout := range userTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("unrecognized date/time %q (want e.g. \"2006-01-02 15:04\")", s)
}
