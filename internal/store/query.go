// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/apollo-lifter/internal/vocab"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

// QueryOptions holds filters for event queries. Empty fields do not filter.
type QueryOptions struct {
	// Speaker matches a call sign ("CDR") or a speaker IRI.
	Speaker string

	// Participant matches a resource referenced by the utterance, given as
	// a call sign or an IRI.
	Participant string

	// Term matches a glossary term tagged in the event.
	Term string

	// Text is a case-insensitive substring of the utterance.
	Text string

	// From and To bound the mission time, inclusive.
	From, To *types.MissionTime

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Speaker == "" && q.Participant == "" && q.Term == "" && q.Text == "" && q.From == nil && q.To == nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Events returns the events matching opts in mission time order.
func (s *Store) Events(ctx context.Context, opts QueryOptions) ([]types.Event, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT e.seconds, e.line, e.text, e.speaker_code, e.speaker, e.utterance,
			e.participants, e.terms
		FROM events e
		WHERE 1=1`)

	if opts.Speaker != "" {
		qb.WriteString(` AND (e.speaker_code = ? OR e.speaker = ?)`)
		args = append(args, opts.Speaker, opts.Speaker)
	}

	if opts.Participant != "" {
		iri := opts.Participant
		if sp, ok := vocab.SpeakerByCode(iri); ok {
			iri = sp.IRI
		}
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(e.participants) WHERE value = ?)`)
		args = append(args, iri)
	}

	if opts.Term != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(e.terms) WHERE value = ?)`)
		args = append(args, opts.Term)
	}

	if opts.Text != "" {
		qb.WriteString(` AND e.utterance LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(opts.Text)+"%")
	}

	if opts.From != nil {
		qb.WriteString(` AND e.seconds >= ?`)
		args = append(args, opts.From.Seconds())
	}
	if opts.To != nil {
		qb.WriteString(` AND e.seconds <= ?`)
		args = append(args, opts.To.Seconds())
	}

	qb.WriteString(` ORDER BY e.seconds LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []types.Event
	for rows.Next() {
		var (
			e                types.Event
			seconds          int
			participantsJSON sql.NullString
			termsJSON        sql.NullString
		)
		if err := rows.Scan(
			&seconds, &e.Line, &e.Text, &e.SpeakerCode, &e.Speaker, &e.Utterance,
			&participantsJSON, &termsJSON,
		); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		e.Time = types.MissionTimeFromSeconds(seconds)
		if participantsJSON.Valid {
			json.Unmarshal([]byte(participantsJSON.String), &e.Participants)
		}
		if termsJSON.Valid {
			json.Unmarshal([]byte(termsJSON.String), &e.Terms)
		}
		if len(e.Participants) == 0 {
			e.Participants = nil
		}
		if len(e.Terms) == 0 {
			e.Terms = nil
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Triples returns the stored triples whose subject is subject, in the order
// they were lifted.
func (s *Store) Triples(ctx context.Context, subject string) ([]types.Triple, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT subject, predicate, object, object_kind FROM triples WHERE subject = ? ORDER BY rowid`,
		subject)
	if err != nil {
		return nil, fmt.Errorf("querying triples: %w", err)
	}
	defer rows.Close()

	var triples []types.Triple
	for rows.Next() {
		var (
			t    types.Triple
			kind string
		)
		if err := rows.Scan(&t.Subject, &t.Predicate, &t.Object.Value, &kind); err != nil {
			return nil, fmt.Errorf("scanning triple: %w", err)
		}
		t.Object.Kind = types.TermKind(kind)
		triples = append(triples, t)
	}
	return triples, rows.Err()
}
