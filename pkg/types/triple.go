// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TermKind distinguishes IRI objects from literal objects.
type TermKind string

const (
	KindIRI     TermKind = "iri"
	KindLiteral TermKind = "literal"
)

// Term is the object position of a triple.
type Term struct {
	Kind  TermKind `json:"kind" yaml:"kind"`
	Value string   `json:"value" yaml:"value"`
}

// IRI returns a Term referring to a resource.
func IRI(v string) Term {
	return Term{Kind: KindIRI, Value: v}
}

// Literal returns a plain string literal Term.
func Literal(v string) Term {
	return Term{Kind: KindLiteral, Value: v}
}

// IsIRI reports whether the term refers to a resource.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}

// Triple is a single subject-predicate-object statement. Subject and
// Predicate are always absolute IRIs.
type Triple struct {
	Subject   string `json:"subject" yaml:"subject"`
	Predicate string `json:"predicate" yaml:"predicate"`
	Object    Term   `json:"object" yaml:"object"`
}
