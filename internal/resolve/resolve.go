// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve maps the names and pronouns in an utterance to the
// knowledge base resources they refer to. Resolution depends on who is
// speaking: "we" said by the crew is the spacecraft, "we" said by the
// capcom is mission control.
package resolve

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/pdiddy/apollo-lifter/internal/vocab"
)

// selfRef marks table entries that resolve to the speaker.
const selfRef = "@speaker"

// unambiguous holds references that mean the same thing whoever says them.
// "fred-o" loses its hyphen during normalization, so both spellings are
// listed in normalized form.
var unambiguous = map[string]string{
	"fred":  vocab.Haise,
	"fredo": vocab.Haise,
	"13":    vocab.Apollo13,
}

var crewTable = map[string]string{
	"jack":       vocab.Lousma,
	"us":         vocab.Apollo13,
	"we":         vocab.Apollo13,
	"our":        vocab.Apollo13,
	"ourselves":  vocab.Apollo13,
	"me":         selfRef,
	"i":          selfRef,
	"you":        vocab.MCC,
	"your":       vocab.MCC,
	"youre":      vocab.MCC,
	"yourselves": vocab.MCC,
	"they":       vocab.MCC,
	"theyre":     vocab.MCC,
	"houston":    vocab.MCC,
	"wed":        vocab.MCC,
}

var groundTable = map[string]string{
	"jack":       vocab.Swigert,
	"us":         vocab.MCC,
	"we":         vocab.MCC,
	"our":        vocab.MCC,
	"ourselves":  vocab.MCC,
	"i":          selfRef,
	"you":        vocab.Apollo13,
	"your":       vocab.Apollo13,
	"youre":      vocab.Apollo13,
	"yourselves": vocab.Apollo13,
	"they":       vocab.Apollo13,
	"theyre":     vocab.Apollo13,
	"cmc":        vocab.MCC,
	"houston":    vocab.MCC,
	"wed":        vocab.MCC,
}

// Resolve returns the resource a normalized word refers to when spoken by
// speaker. Speakers of unknown role resolve nothing.
func Resolve(speaker vocab.Speaker, word string) (string, bool) {
	var table map[string]string
	switch speaker.Role {
	case vocab.RoleCrew:
		table = crewTable
	case vocab.RoleGround:
		table = groundTable
	default:
		return "", false
	}

	iri, ok := unambiguous[word]
	if !ok {
		iri, ok = table[word]
	}
	if !ok {
		return "", false
	}
	if iri == selfRef {
		return speaker.IRI, true
	}
	return iri, true
}

// Participants returns the resources referenced by utterance, in the order
// they first appear, without duplicates.
func Participants(speaker vocab.Speaker, utterance string) []string {
	fold := cases.Fold()
	seen := make(map[string]bool)
	var out []string
	for _, raw := range strings.Split(utterance, " ") {
		word := Normalize(fold.String(raw))
		if word == "" {
			continue
		}
		iri, ok := Resolve(speaker, word)
		if !ok || seen[iri] {
			continue
		}
		seen[iri] = true
		out = append(out, iri)
	}
	return out
}

// Normalize removes punctuation and symbol characters from a word, so that
// "you're," becomes "youre".
func Normalize(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, word)
}
