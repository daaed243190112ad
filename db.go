package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// migration queries
	createEventsTableSQL = `
  CREATE TABLE IF NOT EXISTS events (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  start_datetime DATETIME NOT NULL,
  end_datetime DATETIME NOT NULL,
  color TEXT NOT NULL DEFAULT '#3b82f6',
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP
  )`

	// event queries
	listEventsSQL  = `SELECT id, title, description, start_datetime, end_datetime, color FROM events ORDER BY start_datetime ASC`
	getEventSQL    = `SELECT id, title, description, start_datetime, end_datetime, color FROM events WHERE id = ?`
	insertEventSQL = `INSERT INTO events (id, title, description, start_datetime, end_datetime, color) VALUES (?, ?, ?, ?, ?, ?)`
	deleteEventSQL = `DELETE FROM events WHERE id = ?`
)

type Repo struct {
	db *sql.DB
}

func NewRepo(dbPath string) (*Repo, error) {
	// ensure directory exists
	err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// verify connection with database
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &Repo{db: db}

	// run migrations
	if err := repo.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

// runs migrations on initial start
func (r *Repo) runMigrations() error {
	tables := []string{
		createEventsTableSQL,
	}

	for _, tableSQL := range tables {
		if _, err := r.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// ListEvents returns every event sorted ascending by start instant. The
// sort order is part of the API contract; clients never re-sort.
func (r *Repo) ListEvents() ([]Event, error) {
	rows, err := r.db.Query(listEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// GetEvent returns a single event by id, or sql.ErrNoRows if absent.
func (r *Repo) GetEvent(id string) (Event, error) {
	return scanEvent(r.db.QueryRow(getEventSQL, id))
}

// CreateEvent inserts a fully populated event record.
func (r *Repo) CreateEvent(e Event) error {
	_, err := r.db.Exec(insertEventSQL,
		e.ID, e.Title, nullableString(e.Description), e.Start.UTC(), e.End.UTC(), e.Color)
	return err
}

// UpdateEvent applies the non-nil fields of changes to the stored
// record and returns the full updated event. Updating an unknown id
// returns sql.ErrNoRows.
func (r *Repo) UpdateEvent(id string, changes eventChanges) (Event, error) {
	var sets []string
	var args []any

	if changes.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *changes.Title)
	}
	if changes.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(*changes.Description))
	}
	if changes.Start != nil {
		sets = append(sets, "start_datetime = ?")
		args = append(args, changes.Start.UTC())
	}
	if changes.End != nil {
		sets = append(sets, "end_datetime = ?")
		args = append(args, changes.End.UTC())
	}
	if changes.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *changes.Color)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE events SET " + strings.Join(sets, ", ") + " WHERE id = ?"

		res, err := r.db.Exec(query, args...)
		if err != nil {
			return Event{}, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return Event{}, err
		}
		if affected == 0 {
			return Event{}, sql.ErrNoRows
		}
	}

	return r.GetEvent(id)
}

// DeleteEvent removes an event by id, returning sql.ErrNoRows for an
// unknown id.
func (r *Repo) DeleteEvent(id string) error {
	res, err := r.db.Exec(deleteEventSQL, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// eventChanges is a partial update at the storage layer. Nil fields are
// left as they are.
type eventChanges struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Color       *string
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var e Event
	var desc sql.NullString
	if err := row.Scan(&e.ID, &e.Title, &desc, &e.Start, &e.End, &e.Color); err != nil {
		return Event{}, err
	}
	e.Description = desc.String
	return e, nil
}

// nullableString maps the empty string to NULL so that an absent
// description round-trips as JSON null.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
