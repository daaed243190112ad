package main

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) (*EventStore, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(newAPIServer(newTestRepo(t)).Handler())
	t.Cleanup(ts.Close)
	return NewEventStore(NewAPIClient(ts.URL)), ts
}

func draft(title, start, end string) eventDraft {
	return eventDraft{Title: title, StartDateTime: start, EndDateTime: end}
}

func TestStoreFetchReplacesCache(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Create(draft("B", "2024-03-05T09:00:00Z", "2024-03-05T10:00:00Z")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(draft("A", "2024-03-04T09:00:00Z", "2024-03-04T10:00:00Z")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Fetch(); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	events := store.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// the fetched collection carries the server's sort order
	if events[0].Title != "A" || events[1].Title != "B" {
		t.Errorf("cache order %s, %s; want A, B", events[0].Title, events[1].Title)
	}
	if store.Err() != "" {
		t.Errorf("Err() = %q after successful fetch", store.Err())
	}
}

func TestStoreFetchFailureKeepsCache(t *testing.T) {
	store, ts := newTestStore(t)

	if _, err := store.Create(draft("A", "2024-03-04T09:00:00Z", "2024-03-04T10:00:00Z")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Fetch(); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	ts.Close()

	if err := store.Fetch(); err == nil {
		t.Fatal("Fetch succeeded against a closed server")
	}

	// the last-known collection stays displayed and the error is recorded
	if len(store.Events()) != 1 || store.Events()[0].Title != "A" {
		t.Errorf("cache was modified by a failed fetch: %+v", store.Events())
	}
	if store.Err() == "" {
		t.Error("Err() is empty after a failed fetch")
	}
}

func TestStoreCreateAppendsServerRecord(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create(draft("Standup", "2024-03-04T09:00:00Z", "2024-03-04T09:30:00Z"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("created record has no server-assigned id")
	}
	if created.Color != defaultEventColor {
		t.Errorf("color = %q, want default", created.Color)
	}

	events := store.Events()
	if len(events) != 1 || events[0].ID != created.ID {
		t.Errorf("cache = %+v, want the created record appended", events)
	}
}

func TestStoreCreateValidation(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		name    string
		draft   eventDraft
		wantErr string
	}{
		{"missing title", draft("", "2024-03-04T09:00:00Z", "2024-03-04T10:00:00Z"), "title is required"},
		{"missing start", draft("X", "", "2024-03-04T10:00:00Z"), "start date/time is required"},
		{"missing end", draft("X", "2024-03-04T09:00:00Z", ""), "end date/time is required"},
		{"end before start", draft("X", "2024-03-04T10:00:00Z", "2024-03-04T09:00:00Z"), "end time must be after start time"},
		{"end equals start", draft("X", "2024-03-04T09:00:00Z", "2024-03-04T09:00:00Z"), "end time must be after start time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(tt.draft)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Create() error = %v, want %q", err, tt.wantErr)
			}
			if len(store.Events()) != 0 {
				t.Errorf("cache modified by a rejected create")
			}
		})
	}
}

func TestStoreUpdateReplacesWholesale(t *testing.T) {
	store, _ := newTestStore(t)

	desc := "daily sync"
	created, err := store.Create(eventDraft{
		Title:         "Standup",
		Description:   &desc,
		StartDateTime: "2024-03-04T09:00:00Z",
		EndDateTime:   "2024-03-04T09:30:00Z",
		Color:         "#ef4444",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newTitle := "Renamed"
	updated, err := store.Update(created.ID, eventPatch{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	// the cached entry is the full server response, not a local merge
	cached := store.Events()[0]
	if cached != updated {
		t.Errorf("cached = %+v, want the server record %+v", cached, updated)
	}
	if cached.Title != "Renamed" || cached.Description != "daily sync" || cached.Color != "#ef4444" {
		t.Errorf("server-side preservation broken: %+v", cached)
	}
}

func TestStoreUpdateFailureKeepsCache(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create(draft("Standup", "2024-03-04T09:00:00Z", "2024-03-04T09:30:00Z"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newTitle := "x"
	if _, err := store.Update("unknown-id", eventPatch{Title: &newTitle}); err == nil {
		t.Fatal("Update of an unknown id succeeded")
	}

	if got := store.Events()[0]; got != created {
		t.Errorf("cache modified by a failed update: %+v", got)
	}
	if store.Err() == "" {
		t.Error("Err() is empty after a failed update")
	}
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)

	a, _ := store.Create(draft("A", "2024-03-04T09:00:00Z", "2024-03-04T10:00:00Z"))
	b, _ := store.Create(draft("B", "2024-03-05T09:00:00Z", "2024-03-05T10:00:00Z"))

	if err := store.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if events := store.Events(); len(events) != 1 || events[0].ID != b.ID {
		t.Errorf("cache = %+v, want only %s", events, b.ID)
	}

	// deleting an unknown id fails and leaves the cache alone
	if err := store.Delete("unknown-id"); err == nil {
		t.Fatal("Delete of an unknown id succeeded")
	}
	if len(store.Events()) != 1 {
		t.Errorf("cache modified by a failed delete")
	}
}
