// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/apollo-lifter/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store [transcript]",
	Short: "Lift a transcript and index it in the database",
	Long: `Store lifts the transcript and writes its events and triples into the
SQLite database named by --db, replacing whatever an earlier run stored.
Use query and export to read the indexed events back.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStore,
}

func runStore(cmd *cobra.Command, args []string) error {
	src := sourceConfig(args)
	res, err := liftTranscript(cmd.Context(), src)
	if err != nil {
		return err
	}

	s, err := store.New(storeConfig(), logger)
	if err != nil {
		return err
	}
	defer s.Close()

	sum, err := s.Ingest(cmd.Context(), src.Transcript, res.Events, res.Graph.Triples())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d events and %d triples from %s in %s\n",
		sum.Events, sum.Triples, sum.Source, viper.GetString("db"))
	return nil
}

func init() {
	rootCmd.AddCommand(storeCmd)
}
