// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/apollo-lifter/internal/vocab"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

const problemTranscript = `_page : 158
[02:07:55:19]
CMP: Okay, Houston, we've had a problem here.

[02:07:55:28]
CC: This is Houston. Say again, please.
[02:07:55:35]
CDR: Houston, we've had a problem. We've had a main B bus
undervolt.
_note : static on loop
[02:07:56:10]
CC: Roger. We'd like you to check your [glossary:AC] buses, 13.
`

func parse(t *testing.T, input string) []types.Event {
	t.Helper()
	events, err := NewParser(nil).Parse(strings.NewReader(input))
	require.NoError(t, err)
	return events
}

func TestParse(t *testing.T) {
	events := parse(t, problemTranscript)
	require.Len(t, events, 4)

	first := events[0]
	assert.Equal(t, types.MissionTime{Day: 2, Hour: 7, Minute: 55, Second: 19}, first.Time)
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "CMP", first.SpeakerCode)
	assert.Equal(t, vocab.Swigert, first.Speaker)
	assert.Equal(t, "Okay, Houston, we've had a problem here.", first.Utterance)
	assert.Equal(t, []string{vocab.MCC}, first.Participants)

	second := events[1]
	assert.Equal(t, vocab.MCC, second.Speaker)
	assert.Equal(t, []string{vocab.MCC}, second.Participants)

	third := events[2]
	assert.Equal(t, "CDR: Houston, we've had a problem. We've had a main B bus undervolt.", third.Text,
		"continuation lines are joined and metadata is dropped")
	assert.Equal(t, vocab.Lovell, third.Speaker)

	fourth := events[3]
	assert.Equal(t, []string{"AC"}, fourth.Terms)
	assert.Equal(t, []string{vocab.MCC, vocab.Apollo13}, fourth.Participants)
	assert.Equal(t, "Roger. We'd like you to check your [glossary:AC] buses, 13.", fourth.Utterance)
}

func TestParse_KeepsFirstPositionOfDuplicateTimestamp(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	input := `[00:00:00:01]
CDR: First.
[00:00:00:02]
CC: Second.
[00:00:00:01]
LMP: Replacement.
`
	events, err := NewParser(zap.New(core)).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "LMP: Replacement.", events[0].Text)
	assert.Equal(t, vocab.Haise, events[0].Speaker)
	assert.Equal(t, 5, events[0].Line)
	assert.Equal(t, "CC: Second.", events[1].Text)

	entries := logs.FilterMessage("duplicate timestamp, replacing earlier event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(5), entries[0].ContextMap()["line"])
}

func TestParse_UnknownSpeaker(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	input := "[01:00:00:00]\nPAO: This is Apollo Control, Houston.\n"

	events, err := NewParser(zap.New(core)).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "PAO", e.SpeakerCode)
	assert.Empty(t, e.Speaker)
	assert.Empty(t, e.Participants)
	assert.Equal(t, "This is Apollo Control, Houston.", e.Utterance)

	entries := logs.FilterMessage("unknown speaker code").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "PAO", entries[0].ContextMap()["code"])
}

func TestParse_NoSpeakerCode(t *testing.T) {
	events := parse(t, "[00:01:00:00]\n(Loss of signal)\n")
	require.Len(t, events, 1)
	assert.Empty(t, events[0].SpeakerCode)
	assert.Equal(t, "(Loss of signal)", events[0].Utterance)
}

func TestParse_TextOnTimestampLine(t *testing.T) {
	events := parse(t, "[00:00:01:00] CC: Liftoff.\n")
	require.Len(t, events, 1)
	assert.Equal(t, "CC: Liftoff.", events[0].Text)
	assert.Equal(t, vocab.MCC, events[0].Speaker)
}

func TestParse_EmptyEvent(t *testing.T) {
	events := parse(t, "[00:00:01:00]\n_page : 3\n")
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Text)
	assert.Empty(t, events[0].Utterance)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{
			name:     "text before first timestamp",
			input:    "_page : 1\nCDR: Hello.\n[00:00:00:01]\n",
			wantErr:  ErrOrphanText,
			wantLine: 2,
		},
		{
			name:     "minutes out of range",
			input:    "[00:00:00:01]\nCDR: ok\n[00:00:61:00]\n",
			wantErr:  ErrBadTimestamp,
			wantLine: 3,
		},
		{
			name:     "hours out of range",
			input:    "[00:24:00:00]\n",
			wantErr:  ErrBadTimestamp,
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(nil).Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var lineErr *LineError
			require.True(t, errors.As(err, &lineErr))
			assert.Equal(t, tt.wantLine, lineErr.Line)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	events := parse(t, "")
	assert.Empty(t, events)
}

func TestTerms(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"no tags here", nil},
		{"Check [glossary:LOS] now", []string{"LOS"}},
		{"[glossary:AOS] then [glossary:LOS] and [glossary:AOS]", []string{"AOS", "LOS"}},
		{"spaced [glossary:O2 flow] term", []string{"O2 flow"}},
		{"empty [glossary: ] tag", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Terms(tt.text))
		})
	}
}

func TestParseMissionTime(t *testing.T) {
	mt, err := ParseMissionTime("[02:07:55:19]")
	require.NoError(t, err)
	assert.Equal(t, types.MissionTime{Day: 2, Hour: 7, Minute: 55, Second: 19}, mt)

	mt, err = ParseMissionTime("00:01:02:03")
	require.NoError(t, err)
	assert.Equal(t, 3723, mt.Seconds())

	_, err = ParseMissionTime("01:02:03")
	assert.Error(t, err)

	_, err = ParseMissionTime("00:00:00:xx")
	assert.Error(t, err)

	_, err = ParseMissionTime("00:-1:00:00")
	assert.True(t, errors.Is(err, ErrBadTimestamp))
}
