package main

import "time"

// defaultEventColor is assigned when a create request omits a color.
const defaultEventColor = "#3b82f6"

type viewMode string

const (
	viewMonth viewMode = "month"
	viewWeek  viewMode = "week"
	viewDay   viewMode = "day"
)

type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       string
}

// eventJSON is the wire shape of an event. Timestamps travel as RFC 3339
// strings and description is nullable.
type eventJSON struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	StartDateTime string  `json:"startDateTime"`
	EndDateTime   string  `json:"endDateTime"`
	Color         string  `json:"color"`
}

// eventDraft carries the caller-supplied fields of a create request.
type eventDraft struct {
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	StartDateTime string  `json:"startDateTime"`
	EndDateTime   string  `json:"endDateTime"`
	Color         string  `json:"color,omitempty"`
}

// eventPatch carries a partial update. Nil fields are left out of the
// request body and stay untouched server-side.
type eventPatch struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	StartDateTime *string `json:"startDateTime,omitempty"`
	EndDateTime   *string `json:"endDateTime,omitempty"`
	Color         *string `json:"color,omitempty"`
}

func (e Event) toJSON() eventJSON {
	j := eventJSON{
		ID:            e.ID,
		Title:         e.Title,
		StartDateTime: e.Start.Format(time.RFC3339),
		EndDateTime:   e.End.Format(time.RFC3339),
		Color:         e.Color,
	}
	if e.Description != "" {
		desc := e.Description
		j.Description = &desc
	}
	return j
}

// toEvent converts the wire shape into the domain type. An instant that
// does not parse becomes the zero time, which never matches any day or
// hour slot, so a malformed record drops out of every view instead of
// failing the whole fetch.
func (j eventJSON) toEvent() Event {
	e := Event{
		ID:    j.ID,
		Title: j.Title,
		Color: j.Color,
	}
	if j.Description != nil {
		e.Description = *j.Description
	}
	e.Start, _ = time.Parse(time.RFC3339, j.StartDateTime)
	e.End, _ = time.Parse(time.RFC3339, j.EndDateTime)
	return e
}
