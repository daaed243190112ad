package main

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	repo, err := NewRepo(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("NewRepo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seedEvent(t *testing.T, repo *Repo, e Event) Event {
	t.Helper()
	if err := repo.CreateEvent(e); err != nil {
		t.Fatalf("CreateEvent(%s): %v", e.ID, err)
	}
	return e
}

func TestListEventsSortedByStart(t *testing.T) {
	repo := newTestRepo(t)

	// inserted out of order on purpose
	seedEvent(t, repo, testEvent("late", at(2024, time.March, 6, 9, 0), at(2024, time.March, 6, 10, 0)))
	seedEvent(t, repo, testEvent("early", at(2024, time.March, 4, 9, 0), at(2024, time.March, 4, 10, 0)))
	seedEvent(t, repo, testEvent("middle", at(2024, time.March, 5, 9, 0), at(2024, time.March, 5, 10, 0)))

	events, err := repo.ListEvents()
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}

	want := []string{"early", "middle", "late"}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, events[i].ID, id)
		}
	}
}

func TestGetEvent(t *testing.T) {
	repo := newTestRepo(t)

	e := testEvent("a", at(2024, time.March, 4, 9, 0), at(2024, time.March, 4, 9, 30))
	e.Description = "weekly sync"
	seedEvent(t, repo, e)

	got, err := repo.GetEvent("a")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.Title != e.Title || got.Description != e.Description || got.Color != e.Color {
		t.Errorf("got %+v, want %+v", got, e)
	}
	if !got.Start.Equal(e.Start) || !got.End.Equal(e.End) {
		t.Errorf("instants changed: got %v–%v, want %v–%v", got.Start, got.End, e.Start, e.End)
	}

	if _, err := repo.GetEvent("missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetEvent(missing) = %v, want sql.ErrNoRows", err)
	}
}

func TestUpdateEventPartial(t *testing.T) {
	repo := newTestRepo(t)

	e := testEvent("a", at(2024, time.March, 4, 9, 0), at(2024, time.March, 4, 9, 30))
	e.Description = "keep me"
	seedEvent(t, repo, e)

	newTitle := "Renamed"
	got, err := repo.UpdateEvent("a", eventChanges{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}

	if got.Title != "Renamed" {
		t.Errorf("title = %q, want Renamed", got.Title)
	}
	// fields absent from the patch are preserved server-side
	if got.Description != "keep me" {
		t.Errorf("description = %q, want untouched", got.Description)
	}
	if !got.Start.Equal(e.Start) || !got.End.Equal(e.End) {
		t.Errorf("instants changed by a title-only update")
	}
}

func TestUpdateEventUnknownID(t *testing.T) {
	repo := newTestRepo(t)

	newTitle := "x"
	if _, err := repo.UpdateEvent("missing", eventChanges{Title: &newTitle}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("UpdateEvent(missing) = %v, want sql.ErrNoRows", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	repo := newTestRepo(t)
	seedEvent(t, repo, testEvent("a", at(2024, time.March, 4, 9, 0), at(2024, time.March, 4, 10, 0)))

	if err := repo.DeleteEvent("a"); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if _, err := repo.GetEvent("a"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("event still present after delete")
	}

	if err := repo.DeleteEvent("a"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("DeleteEvent(missing) = %v, want sql.ErrNoRows", err)
	}
}

func TestEmptyDescriptionStoredAsNull(t *testing.T) {
	repo := newTestRepo(t)
	seedEvent(t, repo, testEvent("a", at(2024, time.March, 4, 9, 0), at(2024, time.March, 4, 10, 0)))

	got, err := repo.GetEvent("a")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.Description != "" {
		t.Errorf("description = %q, want empty", got.Description)
	}
	if j := got.toJSON(); j.Description != nil {
		t.Errorf("wire description = %v, want null", *j.Description)
	}
}
