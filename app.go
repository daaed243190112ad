package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nexidian/gocliselect"
)

// App wires the event store to the navigation state and the grid
// renderers. All date computations run synchronously off the cached
// collection; only store calls hit the network.
type App struct {
	store *EventStore
	nav   navState
	now   func() time.Time
}

func NewApp(store *EventStore) *App {
	return &App{
		store: store,
		nav:   newNavState(time.Now()),
		now:   time.Now,
	}
}

// render draws the current view off the cached events.
func (a *App) render() string {
	events := a.store.Events()
	switch a.nav.view {
	case viewWeek:
		return renderWeek(events, a.nav, a.now())
	case viewDay:
		return renderDay(events, a.nav, a.now())
	default:
		return renderMonth(events, a.nav, a.now())
	}
}

// Display fetches once and prints a single view, without entering the
// interactive loop.
func (a *App) Display(view string) error {
	switch viewMode(view) {
	case viewMonth, viewWeek, viewDay:
		a.nav = a.nav.setView(viewMode(view))
	default:
		return fmt.Errorf("invalid view: %s (want month, week or day)", view)
	}

	if err := a.store.Fetch(); err != nil {
		return err
	}
	fmt.Println(a.render())
	return nil
}

// RunUI runs the interactive calendar: render, prompt, apply the chosen
// navigation transition, repeat. Mutations are not part of the loop;
// the add/edit/rm commands cover those.
func (a *App) RunUI() error {
	// A failed initial fetch still enters the loop so the error is
	// visible and a retry is one keystroke away.
	_ = a.store.Fetch()

	for {
		fmt.Print("\033[2J\033[H")
		fmt.Println(a.render())
		if msg := a.store.Err(); msg != "" {
			fmt.Println(errStyle.Render("error: " + msg))
		}

		menu := gocliselect.NewMenu("Navigate")
		menu.AddItem("Next", "next")
		menu.AddItem("Previous", "prev")
		menu.AddItem("Today", "today")
		menu.AddItem("Month view", "month")
		menu.AddItem("Week view", "week")
		menu.AddItem("Day view", "day")
		menu.AddItem("Go to date", "goto")
		menu.AddItem("Refresh", "refresh")
		menu.AddItem("Quit", "quit")

		switch menu.Display() {
		case "next":
			a.nav = a.nav.advance()
		case "prev":
			a.nav = a.nav.retreat()
		case "today":
			a.nav = a.nav.goToToday(a.now())
		case "month":
			a.nav = a.nav.setView(viewMonth)
		case "week":
			a.nav = a.nav.setView(viewWeek)
		case "day":
			a.nav = a.nav.setView(viewDay)
		case "goto":
			if d, ok := promptDate(); ok {
				a.nav = a.nav.setSelectedDate(d)
			}
		case "refresh":
			_ = a.store.Fetch()
		default:
			return nil
		}
	}
}

// promptDate reads a date from stdin; a blank or unparseable line
// cancels the jump.
func promptDate() (time.Time, bool) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Go to date (e.g. 2024-03-04, Enter to cancel): ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return time.Time{}, false
	}

	d, err := time.ParseInLocation("2006-01-02", line, time.Local)
	if err != nil {
		fmt.Println("Unrecognized date, staying put.")
		return time.Time{}, false
	}
	return d, true
}

// ListEvents fetches the collection and prints it as a table.
func (a *App) ListEvents() error {
	if err := a.store.Fetch(); err != nil {
		return err
	}

	headers := []string{"ID", "Day", "Start", "End", "Title", "Color"}

	var rows [][]string
	for _, e := range a.store.Events() {
		kind := formatClock(e.Start)
		if isAllDay(e) {
			kind = "all-day"
		}
		rows = append(rows, []string{
			e.ID,
			formatDay(e.Start),
			kind,
			formatClock(e.End),
			e.Title,
			e.Color,
		})
	}

	footers := []string{"", "", "", "", fmt.Sprintf("Total: %d", len(rows)), ""}
	PrintTable(headers, rows, footers)
	return nil
}

// AddEvent creates an event through the store and reports the assigned id.
func (a *App) AddEvent(draft eventDraft) error {
	event, err := a.store.Create(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Created event %s (%s)\n", event.Title, event.ID)
	return nil
}

// EditEvent sends a partial update for the given id.
func (a *App) EditEvent(id string, patch eventPatch) error {
	event, err := a.store.Update(id, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated event %s (%s)\n", event.Title, event.ID)
	return nil
}

// RemoveEvent deletes the event with the given id.
func (a *App) RemoveEvent(id string) error {
	if err := a.store.Delete(id); err != nil {
		return err
	}

	fmt.Println("Event deleted.")
	return nil
}
