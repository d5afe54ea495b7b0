// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps lifted events and triples in a SQLite database so a
// transcript can be queried by speaker, participant, glossary term, or
// mission time without re-running the lifter.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/apollo-lifter/pkg/types"
)

const defaultMaxResults = 50

// Store manages the event index database.
type Store struct {
	db         *sql.DB
	maxResults int
	logger     *zap.Logger
}

// New opens or creates the database at cfg.DBPath and creates the schema
// if it does not exist.
func New(cfg types.StoreConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults, logger: logger}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			seconds INTEGER NOT NULL UNIQUE,
			line INTEGER,
			text TEXT,
			speaker_code TEXT,
			speaker TEXT,
			utterance TEXT,
			participants TEXT,
			terms TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_speaker ON events(speaker)`,
		`CREATE TABLE IF NOT EXISTS triples (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			subject TEXT NOT NULL,
			predicate TEXT NOT NULL,
			object TEXT NOT NULL,
			object_kind TEXT NOT NULL,
			UNIQUE(subject, predicate, object, object_kind)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_triples_subject ON triples(subject)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			source TEXT PRIMARY KEY,
			ingested_at TEXT,
			events INTEGER,
			triples INTEGER
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingestion run.
type IngestSummary struct {
	Source  string
	Events  int
	Triples int
}

// Ingest replaces the database contents with events and triples lifted from
// source, in one transaction.
func (s *Store) Ingest(ctx context.Context, source string, events []types.Event, triples []types.Triple) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM events`, `DELETE FROM triples`, `DELETE FROM ingest_status`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return IngestSummary{}, fmt.Errorf("clearing previous run: %w", err)
		}
	}

	evStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO events (id, seconds, line, text, speaker_code, speaker, utterance, participants, terms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing event insert: %w", err)
	}
	defer evStmt.Close()

	for _, e := range events {
		participantsJSON, _ := json.Marshal(nonNil(e.Participants))
		termsJSON, _ := json.Marshal(nonNil(e.Terms))
		_, err := evStmt.ExecContext(ctx,
			e.ID(), e.Time.Seconds(), e.Line, e.Text,
			e.SpeakerCode, e.Speaker, e.Utterance,
			string(participantsJSON), string(termsJSON),
		)
		if err != nil {
			return IngestSummary{}, fmt.Errorf("inserting event %s: %w", e.ID(), err)
		}
	}

	trStmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO triples (subject, predicate, object, object_kind) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing triple insert: %w", err)
	}
	defer trStmt.Close()

	for _, t := range triples {
		if _, err := trStmt.ExecContext(ctx, t.Subject, t.Predicate, t.Object.Value, string(t.Object.Kind)); err != nil {
			return IngestSummary{}, fmt.Errorf("inserting triple for %s: %w", t.Subject, err)
		}
	}

	summary := IngestSummary{Source: source, Events: len(events), Triples: len(triples)}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingest_status (source, ingested_at, events, triples) VALUES (?, ?, ?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339), summary.Events, summary.Triples,
	)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("recording ingest status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing: %w", err)
	}

	s.logger.Info("ingested transcript",
		zap.String("source", source),
		zap.Int("events", summary.Events),
		zap.Int("triples", summary.Triples))
	return summary, nil
}

// Status returns the summary of the last ingestion, or sql.ErrNoRows when
// the database is empty.
func (s *Store) Status(ctx context.Context) (IngestSummary, time.Time, error) {
	var (
		sum IngestSummary
		at  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT source, ingested_at, events, triples FROM ingest_status LIMIT 1`,
	).Scan(&sum.Source, &at, &sum.Events, &sum.Triples)
	if err != nil {
		return IngestSummary{}, time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return IngestSummary{}, time.Time{}, fmt.Errorf("parsing ingest time %q: %w", at, err)
	}
	return sum, ts, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
