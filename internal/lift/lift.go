// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lift turns parsed transcript events into an RDF graph using the
// SEM and PROV-O vocabularies.
package lift

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/apollo-lifter/internal/glossary"
	"github.com/pdiddy/apollo-lifter/internal/transcript"
	"github.com/pdiddy/apollo-lifter/internal/vocab"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

// Result holds the outcome of lifting one transcript.
type Result struct {
	Events []types.Event
	Graph  *Graph
}

// Transcript parses r and builds the graph for its events.
func Transcript(ctx context.Context, r io.Reader, g types.Glossary, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	events, err := transcript.NewParser(logger).Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing transcript: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	graph := Build(events, g, logger)
	logger.Info("lifted transcript",
		zap.Int("events", len(events)),
		zap.Int("triples", graph.Len()))
	return &Result{Events: events, Graph: graph}, nil
}

// Build returns the graph describing the mission actors, the two places,
// and every event.
func Build(events []types.Event, g types.Glossary, logger *zap.Logger) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	graph := NewGraph()

	for _, actor := range vocab.Actors {
		graph.Add(actor, vocab.Type, types.IRI(vocab.SemActor))
		graph.Add(actor, vocab.Type, types.IRI(vocab.ProvPerson))
		graph.Add(actor, vocab.SameAs, types.IRI(vocab.SameAsIRI[actor]))
		graph.Add(actor, vocab.ProvActedOnBehalfOf, types.IRI(vocab.NASA))
	}

	for _, place := range vocab.Places {
		graph.Add(place, vocab.Type, types.IRI(vocab.SemObject))
		graph.Add(place, vocab.Type, types.IRI(vocab.SemPlace))
		graph.Add(place, vocab.Type, types.IRI(vocab.ProvLocation))
		graph.Add(place, vocab.SameAs, types.IRI(vocab.SameAsIRI[place]))
	}

	missing := make(map[string]bool)
	for _, e := range events {
		addEvent(graph, e, g, missing, logger)
	}
	return graph
}

func addEvent(graph *Graph, e types.Event, g types.Glossary, missing map[string]bool, logger *zap.Logger) {
	ev := vocab.EventIRI(e.Time)

	graph.Add(ev, vocab.Type, types.IRI(vocab.SemEvent))
	graph.Add(ev, vocab.Type, types.IRI(vocab.ProvActivity))
	graph.Add(ev, vocab.SemHasTimeStamp, types.Literal(e.Time.String()))
	graph.Add(ev, vocab.ProvValue, types.Literal(e.Utterance))
	graph.Add(ev, vocab.ProvWasQuotedFrom, types.IRI(vocab.Spacelog))

	if e.Speaker != "" {
		graph.Add(ev, vocab.ProvWasAttributedTo, types.IRI(e.Speaker))
		graph.Add(ev, vocab.SemHasActor, types.IRI(e.Speaker))

		if s, ok := vocab.SpeakerByIRI(e.Speaker); ok {
			if place := vocab.PlaceOf(s.Role); place != "" {
				graph.Add(ev, vocab.SemHasPlace, types.IRI(place))
				graph.Add(ev, vocab.ProvAtLocation, types.IRI(place))
			}
		}
	}

	for _, p := range e.Participants {
		graph.Add(ev, vocab.SemHasActor, types.IRI(p))
		graph.Add(ev, vocab.ProvWasAssociatedWith, types.IRI(p))
	}

	for _, term := range e.Terms {
		t := vocab.TermIRI(term)
		graph.Add(ev, vocab.SemHasActor, types.IRI(t))
		graph.Add(t, vocab.Type, types.IRI(vocab.SemObject))

		entry, ok := glossary.Lookup(g, term)
		if !ok {
			if !missing[term] {
				missing[term] = true
				logger.Warn("glossary term not found",
					zap.String("term", term),
					zap.String("event", e.ID()))
			}
			continue
		}
		if entry.Summary != "" {
			graph.Add(t, vocab.Label, types.Literal(entry.Summary))
		}
		if entry.Description != "" {
			graph.Add(t, vocab.Comment, types.Literal(entry.Description))
		}
	}
}
