package main

import (
	"fmt"
	"time"
)

// EventStore holds the session-local copy of the event collection and
// mediates every mutation through the REST API. The cache is patched
// only after a successful round trip; a failed call leaves it exactly
// as it was and records the error for the UI. There are no optimistic
// updates.
type EventStore struct {
	client  *APIClient
	events  []Event
	lastErr string
}

func NewEventStore(client *APIClient) *EventStore {
	return &EventStore{client: client}
}

// Events returns the cached collection in server order (ascending by
// start instant).
func (s *EventStore) Events() []Event {
	return s.events
}

// Err returns the message of the last failed call, or "" after a
// successful fetch.
func (s *EventStore) Err() string {
	return s.lastErr
}

// Fetch replaces the whole cache with the server's current collection.
// On failure the previous cache stays displayed.
func (s *EventStore) Fetch() error {
	events, err := s.client.ListEvents()
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.events = events
	s.lastErr = ""
	return nil
}

// Create validates the draft the way the edit form does, sends it, and
// appends the server-returned record (with its assigned id) to the
// cache.
func (s *EventStore) Create(draft eventDraft) (Event, error) {
	if err := validateDraft(draft); err != nil {
		return Event{}, err
	}

	event, err := s.client.CreateEvent(draft)
	if err != nil {
		s.lastErr = err.Error()
		return Event{}, err
	}
	s.events = append(s.events, event)
	return event, nil
}

// Update sends only the provided fields and replaces the cached record
// wholesale with the server response. Nothing is merged client-side;
// preserving omitted fields is the server's job.
func (s *EventStore) Update(id string, patch eventPatch) (Event, error) {
	event, err := s.client.UpdateEvent(id, patch)
	if err != nil {
		s.lastErr = err.Error()
		return Event{}, err
	}
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i] = event
			break
		}
	}
	return event, nil
}

// Delete removes the record from the server, then from the cache.
func (s *EventStore) Delete(id string) error {
	if err := s.client.DeleteEvent(id); err != nil {
		s.lastErr = err.Error()
		return err
	}
	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept
	return nil
}

// validateDraft mirrors the edit form checks: required fields present
// and the end instant strictly after the start.
func validateDraft(draft eventDraft) error {
	if draft.Title == "" {
		return fmt.Errorf("title is required")
	}
	if draft.StartDateTime == "" {
		return fmt.Errorf("start date/time is required")
	}
	if draft.EndDateTime == "" {
		return fmt.Errorf("end date/time is required")
	}

	start, err := time.Parse(time.RFC3339, draft.StartDateTime)
	if err != nil {
		return fmt.Errorf("invalid start date/time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, draft.EndDateTime)
	if err != nil {
		return fmt.Errorf("invalid end date/time: %w", err)
	}
	if !end.After(start) {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}
