// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds settings used when a transcript or glossary location is
// an http(s) URL.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "apollo-lifter/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SourceConfig names the inputs of a lift run.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// Transcript is a local path or URL of the transcript to convert.
	Transcript string `json:"transcript" yaml:"transcript"`

	// Glossary is a local path or URL of the glossary. Empty disables
	// glossary labels.
	Glossary string `json:"glossary" yaml:"glossary"`
}

// OutputFormat selects the RDF serialization written by lift.
type OutputFormat string

const (
	FormatTurtle   OutputFormat = "turtle"
	FormatNTriples OutputFormat = "ntriples"
)

// LiftConfig holds settings for the lift command.
type LiftConfig struct {
	SourceConfig `yaml:",inline"`

	// Format selects the serialization: turtle or ntriples.
	Format OutputFormat `json:"format" yaml:"format"`

	// Output is the destination file; "-" or empty means stdout.
	Output string `json:"output" yaml:"output"`
}

// StoreConfig holds settings for the SQLite event index.
type StoreConfig struct {
	// DBPath is the SQLite database file.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of query results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
