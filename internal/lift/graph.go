// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lift

import "github.com/pdiddy/apollo-lifter/pkg/types"

// Graph is an insertion-ordered set of triples. Adding a triple that is
// already present is a no-op, so the graph never repeats a statement.
type Graph struct {
	triples []types.Triple
	seen    map[types.Triple]bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{seen: make(map[types.Triple]bool)}
}

// Add appends a triple unless the graph already holds it. It reports
// whether the triple was new.
func (g *Graph) Add(subject, predicate string, object types.Term) bool {
	t := types.Triple{Subject: subject, Predicate: predicate, Object: object}
	if g.seen[t] {
		return false
	}
	g.seen[t] = true
	g.triples = append(g.triples, t)
	return true
}

// Triples returns the triples in insertion order. The slice must not be
// modified.
func (g *Graph) Triples() []types.Triple {
	return g.triples
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}
