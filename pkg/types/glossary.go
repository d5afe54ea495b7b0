// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GlossaryEntry is one term of the Spacelog mission glossary.
type GlossaryEntry struct {
	// Summary is the short expansion (e.g. "Loss of signal").
	Summary string `json:"summary" yaml:"summary"`

	// Description is the longer explanation, if the glossary has one.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Type classifies the entry (e.g. "abbreviation", "jargon").
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Glossary maps a term, exactly as tagged in the transcript, to its entry.
type Glossary map[string]GlossaryEntry
