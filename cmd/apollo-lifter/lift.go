// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/apollo-lifter/internal/rdf"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

var liftCmd = &cobra.Command{
	Use:   "lift [transcript]",
	Short: "Convert a transcript into RDF triples",
	Long: `Lift parses the transcript, resolves speakers and the people they
address, attaches glossary labels, and writes the resulting triples to
stdout (or --output). The transcript defaults to the configured
--transcript location; a path or http(s) URL may be given instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLift,
}

func runLift(cmd *cobra.Command, args []string) error {
	cfg := types.LiftConfig{
		SourceConfig: sourceConfig(args),
		Format:       types.OutputFormat(viper.GetString("lift.format")),
		Output:       viper.GetString("lift.output"),
	}

	res, err := liftTranscript(cmd.Context(), cfg.SourceConfig)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := rdf.Write(w, cfg.Format, res.Graph.Triples()); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func init() {
	liftCmd.Flags().StringP("format", "f", string(types.FormatTurtle), "output format: turtle or ntriples")
	liftCmd.Flags().StringP("output", "o", "-", "output file (- for stdout)")

	viper.BindPFlag("lift.format", liftCmd.Flags().Lookup("format"))
	viper.BindPFlag("lift.output", liftCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(liftCmd)
}
