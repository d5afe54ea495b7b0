// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rdf writes triples as Turtle or N-Triples. It covers exactly what
// the lifter emits: IRIs and plain string literals.
package rdf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/apollo-lifter/internal/vocab"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

// localNameRe restricts prefixed names to a conservative subset of the
// Turtle PN_LOCAL production.
var localNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Write serializes triples in the given format.
func Write(w io.Writer, format types.OutputFormat, triples []types.Triple) error {
	switch format {
	case types.FormatTurtle, "":
		return WriteTurtle(w, triples, vocab.Prefixes)
	case types.FormatNTriples:
		return WriteNTriples(w, triples)
	default:
		return fmt.Errorf("unsupported format %q: use turtle or ntriples", format)
	}
}

// WriteNTriples writes one "<s> <p> o ." line per triple with absolute IRIs.
func WriteNTriples(w io.Writer, triples []types.Triple) error {
	bw := bufio.NewWriter(w)
	for _, t := range triples {
		fmt.Fprintf(bw, "%s %s %s .\n", iriRef(t.Subject), iriRef(t.Predicate), ntObject(t.Object))
	}
	return bw.Flush()
}

// WriteTurtle writes a PREFIX header and then the triples. Consecutive
// triples sharing a subject form one statement joined with ";"; consecutive
// objects of the same predicate are joined with ",".
func WriteTurtle(w io.Writer, triples []types.Triple, prefixes []vocab.Prefix) error {
	bw := bufio.NewWriter(w)
	for _, p := range prefixes {
		fmt.Fprintf(bw, "PREFIX %s: %s\n", p.Name, iriRef(p.IRI))
	}

	c := compactor{prefixes: prefixes}
	for i := 0; i < len(triples); {
		subject := triples[i].Subject
		j := i
		for j < len(triples) && triples[j].Subject == subject {
			j++
		}
		writeStatement(bw, c, triples[i:j])
		i = j
	}
	return bw.Flush()
}

// writeStatement writes the triples of one subject as a single statement.
func writeStatement(w *bufio.Writer, c compactor, group []types.Triple) {
	fmt.Fprintf(w, "\n%s", c.iri(group[0].Subject))

	for i := 0; i < len(group); {
		pred := group[i].Predicate
		if i > 0 {
			w.WriteString(" ;\n   ")
		}
		if pred == vocab.Type {
			w.WriteString(" a ")
		} else {
			fmt.Fprintf(w, " %s ", c.iri(pred))
		}

		j := i
		for j < len(group) && group[j].Predicate == pred {
			if j > i {
				w.WriteString(", ")
			}
			w.WriteString(c.object(group[j].Object))
			j++
		}
		i = j
	}
	w.WriteString(" .\n")
}

// compactor renders IRIs as prefixed names where the Turtle grammar allows.
type compactor struct {
	prefixes []vocab.Prefix
}

func (c compactor) iri(iri string) string {
	for _, p := range c.prefixes {
		local, ok := strings.CutPrefix(iri, p.IRI)
		if ok && localNameRe.MatchString(local) {
			return p.Name + ":" + local
		}
	}
	return iriRef(iri)
}

func (c compactor) object(t types.Term) string {
	if t.IsIRI() {
		return c.iri(t.Value)
	}
	return literal(t.Value)
}

func ntObject(t types.Term) string {
	if t.IsIRI() {
		return iriRef(t.Value)
	}
	return literal(t.Value)
}

func iriRef(iri string) string {
	return "<" + iri + ">"
}

func literal(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}
