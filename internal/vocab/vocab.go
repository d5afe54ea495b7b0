// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab holds the namespaces, predicates, and knowledge base
// resources used when lifting the Apollo 13 transcript.
package vocab

import (
	"net/url"

	"github.com/pdiddy/apollo-lifter/pkg/types"
)

// Namespace IRIs.
const (
	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"
	OWL  = "http://www.w3.org/2002/07/owl#"
	PROV = "http://www.w3.org/ns/prov#"
	SEM  = "http://semanticweb.cs.vu.nl/2009/11/sem/"
)

// Prefix binds a short name to a namespace IRI.
type Prefix struct {
	Name string
	IRI  string
}

// Prefixes lists the namespaces declared at the top of Turtle output, in
// declaration order.
var Prefixes = []Prefix{
	{Name: "rdf", IRI: RDF},
	{Name: "rdfs", IRI: RDFS},
	{Name: "owl", IRI: OWL},
	{Name: "prov", IRI: PROV},
	{Name: "sem", IRI: SEM},
}

// Predicates and classes.
const (
	Type    = RDF + "type"
	Label   = RDFS + "label"
	Comment = RDFS + "comment"
	SameAs  = OWL + "sameAs"

	ProvPerson            = PROV + "Person"
	ProvLocation          = PROV + "Location"
	ProvActivity          = PROV + "Activity"
	ProvActedOnBehalfOf   = PROV + "actedOnBehalfOf"
	ProvValue             = PROV + "value"
	ProvWasQuotedFrom     = PROV + "wasQuotedFrom"
	ProvWasAttributedTo   = PROV + "wasAttributedTo"
	ProvAtLocation        = PROV + "atLocation"
	ProvWasAssociatedWith = PROV + "wasAssociatedWith"

	SemActor        = SEM + "Actor"
	SemObject       = SEM + "Object"
	SemPlace        = SEM + "Place"
	SemEvent        = SEM + "Event"
	SemHasActor     = SEM + "hasActor"
	SemHasPlace     = SEM + "hasPlace"
	SemHasTimeStamp = SEM + "hasTimeStamp"
)

// KB is the base IRI of the Apollo knowledge base.
const KB = "http://apollo.nasa.gov/KB"

// Knowledge base resources.
const (
	Lovell       = KB + "#jamesarthurlovelljr"
	Haise        = KB + "#fredwallacehaisejr"
	MCC          = KB + "#mcc"
	Swigert      = KB + "#johnleonardswigertjr"
	Lousma       = KB + "#jackrobertlousmausmc"
	Apollo13     = KB + "#apollo13"
	Unidentified = KB + "#unidentified"
)

// External resources.
const (
	NASA     = "http://dbpedia.org/page/NASA"
	Spacelog = "https://github.com/Spacelog/Spacelog/"
)

// SameAsIRI maps knowledge base resources to their equivalents in public
// datasets.
var SameAsIRI = map[string]string{
	Lovell:   "http://data.kasabi.com/dataset/nasa/person/jamesarthurlovelljr",
	Haise:    "http://data.kasabi.com/dataset/nasa/person/fredwallacehaisejr",
	MCC:      "https://www.wikidata.org/wiki/Q5112041",
	Swigert:  "http://data.kasabi.com/dataset/nasa/person/johnleonardswigertjr",
	Lousma:   "http://data.kasabi.com/dataset/nasa/person/jackrobertlousma",
	Apollo13: "http://data.kasabi.com/dataset/nasa/mission/apollo-13",
}

// Actors are declared as people acting on behalf of NASA, in this order.
var Actors = []string{Lovell, Haise, MCC, Swigert, Lousma}

// Places are declared as locations, in this order.
var Places = []string{Apollo13, MCC}

// EventIRI returns the knowledge base IRI of the event at t.
func EventIRI(t types.MissionTime) string {
	return KB + "#" + t.GET()
}

// TermIRI returns the knowledge base IRI of a glossary term. The term is
// path-escaped so terms with spaces still form a valid IRI.
func TermIRI(term string) string {
	return KB + "#" + url.PathEscape(term)
}
