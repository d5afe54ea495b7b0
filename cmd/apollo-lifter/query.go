// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/pdiddy/apollo-lifter/internal/rdf"
	"github.com/pdiddy/apollo-lifter/internal/store"
	"github.com/pdiddy/apollo-lifter/internal/transcript"
	"github.com/pdiddy/apollo-lifter/internal/vocab"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search stored events by speaker, participant, term, time, or text",
	Long: `Query reads events indexed by store. Filters combine with AND:
--speaker and --participant take a speaker code (CC, CDR) or an IRI,
--term matches a glossary term exactly, --from and --to bound the
mission time (DD:HH:MM:SS), and any positional words must appear in
the text. Without filters the first --limit events are listed.`,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd.Flags(), args)
	if err != nil {
		return err
	}
	if opts.IsEmpty() {
		logger.Debug("no filters given, listing events in mission order")
	}

	s, err := store.New(storeConfig(), logger)
	if err != nil {
		return err
	}
	defer s.Close()

	events, err := s.Events(cmd.Context(), opts)
	if err != nil {
		return err
	}
	logger.Debug("query finished", zap.Int("results", len(events)))

	if withTriples, _ := cmd.Flags().GetBool("triples"); withTriples {
		return writeEventTriples(cmd, s, events)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(cmd, events, jsonOutput)
}

// writeEventTriples prints the stored triples describing each event as
// Turtle, in mission order.
func writeEventTriples(cmd *cobra.Command, s *store.Store, events []types.Event) error {
	var all []types.Triple
	for _, e := range events {
		triples, err := s.Triples(cmd.Context(), vocab.EventIRI(e.Time))
		if err != nil {
			return err
		}
		all = append(all, triples...)
	}
	return rdf.Write(cmd.OutOrStdout(), types.FormatTurtle, all)
}

func formatQueryOutput(cmd *cobra.Command, events []types.Event, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		if events == nil {
			events = []types.Event{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}

	if len(events) == 0 {
		fmt.Fprintln(out, "No events found.")
		return nil
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.Time.String(),
			e.SpeakerCode,
			joinLocalNames(e.Participants),
			strings.Join(e.Terms, ", "),
			e.Utterance,
		})
	}
	headers := []string{"Time", "Speaker", "Addressed", "Terms", "Utterance"}
	fmt.Fprintln(out, renderTable(headers, rows, map[int]bool{4: true}))
	return nil
}

// joinLocalNames shortens each IRI to the part after '#' or the last '/'.
func joinLocalNames(iris []string) string {
	names := make([]string, 0, len(iris))
	for _, iri := range iris {
		if i := strings.LastIndexAny(iri, "#/"); i >= 0 && i < len(iri)-1 {
			iri = iri[i+1:]
		}
		names = append(names, iri)
	}
	return strings.Join(names, ", ")
}

// addFilterFlags registers the filters shared by query and export.
func addFilterFlags(fs *pflag.FlagSet) {
	fs.String("speaker", "", "filter by speaker code or IRI")
	fs.String("participant", "", "filter by addressed participant code or IRI")
	fs.String("term", "", "filter by glossary term")
	fs.String("from", "", "earliest mission time, DD:HH:MM:SS")
	fs.String("to", "", "latest mission time, DD:HH:MM:SS")
}

func queryOptsFromFlags(fs *pflag.FlagSet, args []string) (store.QueryOptions, error) {
	speaker, _ := fs.GetString("speaker")
	participant, _ := fs.GetString("participant")
	term, _ := fs.GetString("term")

	opts := store.QueryOptions{
		Speaker:     speaker,
		Participant: participant,
		Term:        term,
		Text:        strings.Join(args, " "),
	}
	if fs.Lookup("limit") != nil {
		opts.MaxResults, _ = fs.GetInt("limit")
	}

	for _, bound := range []struct {
		flag string
		dst  **types.MissionTime
	}{
		{"from", &opts.From},
		{"to", &opts.To},
	} {
		v, _ := fs.GetString(bound.flag)
		if v == "" {
			continue
		}
		t, err := transcript.ParseMissionTime(v)
		if err != nil {
			return store.QueryOptions{}, fmt.Errorf("--%s: %w", bound.flag, err)
		}
		*bound.dst = &t
	}

	if opts.From != nil && opts.To != nil && opts.From.Seconds() > opts.To.Seconds() {
		return store.QueryOptions{}, fmt.Errorf("--from %s is after --to %s", opts.From, opts.To)
	}
	return opts, nil
}

func init() {
	addFilterFlags(queryCmd.Flags())
	queryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	queryCmd.Flags().Bool("triples", false, "print the stored triples of each matching event as Turtle")

	rootCmd.AddCommand(queryCmd)
}
