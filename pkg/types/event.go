// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// MissionTime is a ground elapsed time as written in the transcript,
// [day:hour:minute:second].
type MissionTime struct {
	Day    int `json:"day" yaml:"day"`
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`
	Second int `json:"second" yaml:"second"`
}

// Seconds returns the absolute number of seconds since launch. Events are
// keyed by this value.
func (t MissionTime) Seconds() int {
	return t.Day*86400 + t.Hour*3600 + t.Minute*60 + t.Second
}

// String returns the human readable form DD:HH:MM:SS.
func (t MissionTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.Day, t.Hour, t.Minute, t.Second)
}

// GET returns the ground elapsed time identifier GET_HH_MM_SS, where HH is
// the total number of hours (days folded in).
func (t MissionTime) GET() string {
	return fmt.Sprintf("GET_%02d_%02d_%02d", t.Day*24+t.Hour, t.Minute, t.Second)
}

// MissionTimeFromSeconds is the inverse of MissionTime.Seconds.
func MissionTimeFromSeconds(secs int) MissionTime {
	return MissionTime{
		Day:    secs / 86400,
		Hour:   secs % 86400 / 3600,
		Minute: secs % 3600 / 60,
		Second: secs % 60,
	}
}

// Event is one timestamped transcript entry with everything the lifter
// derives from it.
type Event struct {
	// Time is the mission time of the timestamp line that opened the event.
	Time MissionTime `json:"time" yaml:"time"`

	// Line is the 1-based line number of the timestamp line.
	Line int `json:"line" yaml:"line"`

	// Text is the event body: non-meta lines after the timestamp, trimmed
	// and joined with single spaces.
	Text string `json:"text" yaml:"text"`

	// SpeakerCode is the call sign prefix of the text (e.g. "CDR", "CC").
	// Empty when the text has no "CODE: " prefix.
	SpeakerCode string `json:"speaker_code,omitempty" yaml:"speaker_code,omitempty"`

	// Speaker is the knowledge base IRI for SpeakerCode. Empty when the
	// code is missing or unknown.
	Speaker string `json:"speaker,omitempty" yaml:"speaker,omitempty"`

	// Utterance is the spoken text after the speaker code, or the whole
	// text when there is no code.
	Utterance string `json:"utterance" yaml:"utterance"`

	// Participants are the IRIs referenced by the utterance, in first-seen
	// order.
	Participants []string `json:"participants,omitempty" yaml:"participants,omitempty"`

	// Terms are the glossary terms tagged in the text, in first-seen order.
	Terms []string `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// ID returns the event's ground elapsed time identifier.
func (e Event) ID() string {
	return e.Time.GET()
}
