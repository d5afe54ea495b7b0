// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript parses Spacelog mission transcripts into events.
//
// A transcript is a sequence of timestamp lines, [DD:HH:MM:SS], each
// followed by the lines of one utterance, usually "CODE: spoken text".
// Lines starting with an underscore carry Spacelog metadata and are
// ignored.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/apollo-lifter/internal/resolve"
	"github.com/pdiddy/apollo-lifter/internal/vocab"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

var (
	// timestampRe matches a timestamp at the start of a line: [02:07:55:19].
	timestampRe = regexp.MustCompile(`^\[(\d+):(\d+):(\d+):(\d+)\]`)

	// speakerRe splits event text into call sign and spoken text.
	speakerRe = regexp.MustCompile(`^(\w+): (.+)$`)

	// glossaryRe matches inline glossary tags like [glossary:LOS].
	glossaryRe = regexp.MustCompile(`\[glossary:([^\]]+)\]`)
)

const maxLineBytes = 1 << 20

var (
	// ErrOrphanText is returned when text appears before the first timestamp.
	ErrOrphanText = errors.New("text before first timestamp")

	// ErrBadTimestamp is returned when a timestamp field is out of range.
	ErrBadTimestamp = errors.New("timestamp out of range")
)

// LineError reports a parse failure at a transcript line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parser turns transcript text into annotated events.
type Parser struct {
	logger *zap.Logger
}

// NewParser returns a Parser that reports tolerated anomalies to logger.
// A nil logger discards them.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// pending accumulates the text lines of one event.
type pending struct {
	event types.Event
	parts []string
}

// Parse reads a transcript and returns its events in the order their
// timestamps first appear. A timestamp seen twice starts its event over
// but keeps the original position.
func (p *Parser) Parse(r io.Reader) ([]types.Event, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		order   []int
		byKey   = make(map[int]*pending)
		current *pending
		lineNo  int
	)

	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if m := timestampRe.FindStringSubmatch(line); m != nil {
			mt, err := parseMissionTime(m[1:])
			if err != nil {
				return nil, &LineError{Line: lineNo, Err: err}
			}
			key := mt.Seconds()
			if prev, ok := byKey[key]; ok {
				p.logger.Warn("duplicate timestamp, replacing earlier event",
					zap.Int("line", lineNo),
					zap.Int("previous_line", prev.event.Line),
					zap.String("event", mt.GET()))
			} else {
				order = append(order, key)
			}
			current = &pending{event: types.Event{Time: mt, Line: lineNo}}
			byKey[key] = current

			if rest := strings.TrimSpace(line[len(m[0]):]); rest != "" {
				current.parts = append(current.parts, rest)
			}
			continue
		}

		if strings.HasPrefix(line, "_") {
			continue
		}

		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if current == nil {
			return nil, &LineError{Line: lineNo, Err: ErrOrphanText}
		}
		current.parts = append(current.parts, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	events := make([]types.Event, 0, len(order))
	for _, key := range order {
		pe := byKey[key]
		pe.event.Text = strings.Join(pe.parts, " ")
		p.annotate(&pe.event)
		events = append(events, pe.event)
	}

	p.logger.Debug("parsed transcript",
		zap.Int("lines", lineNo),
		zap.Int("events", len(events)))
	return events, nil
}

// annotate fills in the speaker, utterance, participants, and glossary
// terms of an event from its text.
func (p *Parser) annotate(e *types.Event) {
	e.Terms = Terms(e.Text)

	m := speakerRe.FindStringSubmatch(e.Text)
	if m == nil {
		e.Utterance = e.Text
		return
	}

	e.SpeakerCode = m[1]
	e.Utterance = strings.TrimSpace(m[2])

	s, ok := vocab.SpeakerByCode(e.SpeakerCode)
	if !ok {
		p.logger.Warn("unknown speaker code",
			zap.Int("line", e.Line),
			zap.String("event", e.ID()),
			zap.String("code", e.SpeakerCode))
		return
	}
	e.Speaker = s.IRI
	e.Participants = resolve.Participants(s, e.Utterance)
}

// Terms returns the glossary terms tagged in text, in first-seen order
// without duplicates.
func Terms(text string) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, m := range glossaryRe.FindAllStringSubmatch(text, -1) {
		term := strings.TrimSpace(m[1])
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}

// ParseMissionTime parses DD:HH:MM:SS, with or without surrounding brackets.
func ParseMissionTime(s string) (types.MissionTime, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "["), "]")
	fields := strings.Split(s, ":")
	if len(fields) != 4 {
		return types.MissionTime{}, fmt.Errorf("mission time %q: want DD:HH:MM:SS", s)
	}
	return parseMissionTime(fields)
}

func parseMissionTime(fields []string) (types.MissionTime, error) {
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return types.MissionTime{}, fmt.Errorf("mission time field %q: %w", f, err)
		}
		v[i] = n
	}
	mt := types.MissionTime{Day: v[0], Hour: v[1], Minute: v[2], Second: v[3]}
	if mt.Day < 0 || mt.Hour < 0 || mt.Hour > 23 || mt.Minute < 0 || mt.Minute > 59 || mt.Second < 0 || mt.Second > 59 {
		return types.MissionTime{}, fmt.Errorf("%w: %s", ErrBadTimestamp, mt)
	}
	return mt, nil
}
