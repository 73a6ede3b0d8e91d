package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// storageKey is the single document key holding the full date->record map.
const storageKey = "heures"

// Outcome reports what a confirmation-gated mutation did. A caller that
// receives OutcomeRequiresConfirmation decides whether to retry with the
// confirmed flag set; the store itself never prompts.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeRequiresConfirmation
	OutcomeNoop
)

// Store persists the date->DayRecord mapping as one JSON document in a
// key-value table. Every mutation rewrites the whole document in a single
// statement, so a crash leaves the mapping either fully written or
// untouched, never half-updated.
type Store struct {
	db *sql.DB
}

func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.createTables(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the full current snapshot. An absent document yields an
// empty mapping.
func (s *Store) Get() (map[string]DayRecord, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, storageKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return map[string]DayRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	records := map[string]DayRecord{}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("corrupt stored data: %w", err)
	}
	return records, nil
}

// Put inserts or overwrites the record at date. Overwriting an existing
// date requires the confirmed flag; without it nothing changes.
func (s *Store) Put(date string, rec DayRecord, confirmed bool) (Outcome, error) {
	records, err := s.Get()
	if err != nil {
		return OutcomeNoop, err
	}

	if _, exists := records[date]; exists && !confirmed {
		return OutcomeRequiresConfirmation, nil
	}

	records[date] = rec
	if err := s.save(records); err != nil {
		return OutcomeNoop, err
	}
	return OutcomeApplied, nil
}

// Delete removes the record at date. Deleting a present record requires
// the confirmed flag; an absent date is a no-op either way.
func (s *Store) Delete(date string, confirmed bool) (Outcome, error) {
	records, err := s.Get()
	if err != nil {
		return OutcomeNoop, err
	}

	if _, exists := records[date]; !exists {
		return OutcomeNoop, nil
	}
	if !confirmed {
		return OutcomeRequiresConfirmation, nil
	}

	delete(records, date)
	if err := s.save(records); err != nil {
		return OutcomeNoop, err
	}
	return OutcomeApplied, nil
}

// ReplaceAll discards the prior content entirely. Used by CSV import.
func (s *Store) ReplaceAll(records map[string]DayRecord) error {
	if records == nil {
		records = map[string]DayRecord{}
	}
	return s.save(records)
}

func (s *Store) save(records map[string]DayRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		storageKey, string(raw),
	)
	return err
}
