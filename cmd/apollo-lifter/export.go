// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/apollo-lifter/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [text]",
	Short: "Export stored events as YAML or JSON",
	Long: `Export writes every stored event matching the filters to stdout or
--output. The filters are the same as for query; --limit does not apply.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	opts, err := queryOptsFromFlags(cmd.Flags(), args)
	if err != nil {
		return err
	}

	s, err := store.New(storeConfig(), logger)
	if err != nil {
		return err
	}
	defer s.Close()

	w, closeOut, err := openOutput(output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "":
		err = s.ExportYAML(cmd.Context(), w, opts)
	case "json":
		err = s.ExportJSON(cmd.Context(), w, opts)
	default:
		err = fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	addFilterFlags(exportCmd.Flags())
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().StringP("output", "o", "-", "output file (- for stdout)")

	rootCmd.AddCommand(exportCmd)
}
