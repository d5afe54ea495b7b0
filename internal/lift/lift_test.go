// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lift

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/apollo-lifter/internal/rdf"
	"github.com/pdiddy/apollo-lifter/internal/vocab"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

const transcriptFixture = `[02:07:55:19]
CMP: Okay, Houston, we've had a problem here.
[02:07:55:28]
CC: This is Houston. Say again, please.
[02:07:56:10]
CC: We'd like you to check the [glossary:AC] buses, Jack. Verify [glossary:CMC] too.
[02:07:57:00]
SC: (Garbled)
`

var glossaryFixture = types.Glossary{
	"AC": {Summary: "Alternating current"},
	"CMC": {
		Summary:     "Command Module Computer",
		Description: "Guidance computer in the command module.",
	},
}

// has reports whether the graph contains the triple.
func has(g *Graph, s, p string, o types.Term) bool {
	for _, t := range g.Triples() {
		if t.Subject == s && t.Predicate == p && t.Object == o {
			return true
		}
	}
	return false
}

func liftFixture(t *testing.T, logger *zap.Logger) *Result {
	t.Helper()
	res, err := Transcript(context.Background(), strings.NewReader(transcriptFixture), glossaryFixture, logger)
	require.NoError(t, err)
	return res
}

func TestGraph_Add(t *testing.T) {
	g := NewGraph()
	assert.True(t, g.Add("s", "p", types.IRI("o")))
	assert.False(t, g.Add("s", "p", types.IRI("o")))
	assert.True(t, g.Add("s", "p", types.Literal("o")), "literal and IRI objects differ")
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, "s", g.Triples()[0].Subject)
}

func TestBuild_ActorsAndPlaces(t *testing.T) {
	g := Build(nil, nil, nil)

	for _, actor := range vocab.Actors {
		assert.True(t, has(g, actor, vocab.Type, types.IRI(vocab.SemActor)), actor)
		assert.True(t, has(g, actor, vocab.Type, types.IRI(vocab.ProvPerson)), actor)
		assert.True(t, has(g, actor, vocab.ProvActedOnBehalfOf, types.IRI(vocab.NASA)), actor)
		assert.True(t, has(g, actor, vocab.SameAs, types.IRI(vocab.SameAsIRI[actor])), actor)
	}
	for _, place := range vocab.Places {
		assert.True(t, has(g, place, vocab.Type, types.IRI(vocab.SemPlace)), place)
		assert.True(t, has(g, place, vocab.Type, types.IRI(vocab.ProvLocation)), place)
	}

	// MCC's owl:sameAs is declared once even though it is both actor and place.
	// 5 actors * 4 + Apollo 13 * 4 + MCC * 3.
	assert.Equal(t, 27, g.Len())
}

func TestTranscript_Events(t *testing.T) {
	res := liftFixture(t, nil)
	require.Len(t, res.Events, 4)
	g := res.Graph

	problem := vocab.KB + "#GET_55_55_19"
	assert.True(t, has(g, problem, vocab.Type, types.IRI(vocab.SemEvent)))
	assert.True(t, has(g, problem, vocab.Type, types.IRI(vocab.ProvActivity)))
	assert.True(t, has(g, problem, vocab.SemHasTimeStamp, types.Literal("02:07:55:19")))
	assert.True(t, has(g, problem, vocab.ProvValue, types.Literal("Okay, Houston, we've had a problem here.")))
	assert.True(t, has(g, problem, vocab.ProvWasQuotedFrom, types.IRI(vocab.Spacelog)))
	assert.True(t, has(g, problem, vocab.ProvWasAttributedTo, types.IRI(vocab.Swigert)))
	assert.True(t, has(g, problem, vocab.SemHasActor, types.IRI(vocab.Swigert)))
	assert.True(t, has(g, problem, vocab.SemHasPlace, types.IRI(vocab.Apollo13)))
	assert.True(t, has(g, problem, vocab.ProvAtLocation, types.IRI(vocab.Apollo13)))
	assert.True(t, has(g, problem, vocab.SemHasActor, types.IRI(vocab.MCC)))
	assert.True(t, has(g, problem, vocab.ProvWasAssociatedWith, types.IRI(vocab.MCC)))

	ground := vocab.KB + "#GET_55_55_28"
	assert.True(t, has(g, ground, vocab.SemHasPlace, types.IRI(vocab.MCC)))
	assert.True(t, has(g, ground, vocab.ProvAtLocation, types.IRI(vocab.MCC)))
}

func TestTranscript_Terms(t *testing.T) {
	res := liftFixture(t, nil)
	g := res.Graph

	ev := vocab.KB + "#GET_55_56_10"
	ac := vocab.KB + "#AC"
	cmc := vocab.KB + "#CMC"

	assert.True(t, has(g, ac, vocab.Type, types.IRI(vocab.SemObject)))
	assert.True(t, has(g, ev, vocab.SemHasActor, types.IRI(ac)))
	assert.True(t, has(g, ac, vocab.Label, types.Literal("Alternating current")))
	assert.True(t, has(g, cmc, vocab.Label, types.Literal("Command Module Computer")))
	assert.True(t, has(g, cmc, vocab.Comment, types.Literal("Guidance computer in the command module.")))

	// Capcom saying "Jack" means Swigert.
	assert.True(t, has(g, ev, vocab.SemHasActor, types.IRI(vocab.Swigert)))
	assert.True(t, has(g, ev, vocab.ProvWasAssociatedWith, types.IRI(vocab.Apollo13)))
}

func TestTranscript_UnidentifiedSpeaker(t *testing.T) {
	res := liftFixture(t, nil)
	g := res.Graph

	ev := vocab.KB + "#GET_55_57_00"
	assert.True(t, has(g, ev, vocab.ProvWasAttributedTo, types.IRI(vocab.Unidentified)))
	assert.False(t, has(g, ev, vocab.SemHasPlace, types.IRI(vocab.Apollo13)))
	assert.False(t, has(g, ev, vocab.SemHasPlace, types.IRI(vocab.MCC)))
}

func TestTranscript_MissingGlossaryTermWarnsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	input := "[00:00:00:01]\nCC: [glossary:LOS] in one minute.\n[00:00:00:02]\nCC: [glossary:LOS] now.\n"

	res, err := Transcript(context.Background(), strings.NewReader(input), types.Glossary{}, zap.New(core))
	require.NoError(t, err)

	los := vocab.KB + "#LOS"
	assert.True(t, has(res.Graph, los, vocab.Type, types.IRI(vocab.SemObject)))
	for _, tr := range res.Graph.Triples() {
		assert.False(t, tr.Subject == los && tr.Predicate == vocab.Label)
	}
	assert.Equal(t, 1, logs.FilterMessage("glossary term not found").Len())
}

func TestTranscript_ParseError(t *testing.T) {
	_, err := Transcript(context.Background(), strings.NewReader("orphan\n"), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing transcript")
}

func TestTranscript_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Transcript(ctx, strings.NewReader(transcriptFixture), nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranscript_Turtle(t *testing.T) {
	res := liftFixture(t, nil)

	var buf bytes.Buffer
	require.NoError(t, rdf.Write(&buf, types.FormatTurtle, res.Graph.Triples()))
	out := buf.String()

	assert.Contains(t, out, `<http://apollo.nasa.gov/KB#GET_55_55_19> a sem:Event, prov:Activity ;
    sem:hasTimeStamp "02:07:55:19" ;
    prov:value "Okay, Houston, we've had a problem here." ;
    prov:wasQuotedFrom <https://github.com/Spacelog/Spacelog/> ;
    prov:wasAttributedTo <http://apollo.nasa.gov/KB#johnleonardswigertjr> ;
    sem:hasActor <http://apollo.nasa.gov/KB#johnleonardswigertjr> ;
    sem:hasPlace <http://apollo.nasa.gov/KB#apollo13> ;
    prov:atLocation <http://apollo.nasa.gov/KB#apollo13> ;
    sem:hasActor <http://apollo.nasa.gov/KB#mcc> ;
    prov:wasAssociatedWith <http://apollo.nasa.gov/KB#mcc> .`)
	assert.Contains(t, out, `<http://apollo.nasa.gov/KB#AC> a sem:Object ;
    rdfs:label "Alternating current" .`)
}
