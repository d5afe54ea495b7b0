// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/apollo-lifter/pkg/types"
)

const exportLimit = 1000000

// ExportFile is the document written by ExportYAML and ExportJSON.
type ExportFile struct {
	Source string        `json:"source" yaml:"source"`
	Events []types.Event `json:"events" yaml:"events"`
}

// ExportYAML writes the events matching opts to w as YAML. MaxResults is
// ignored; every matching event is exported.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts QueryOptions) error {
	doc, err := s.exportFile(ctx, opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes the events matching opts to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts QueryOptions) error {
	doc, err := s.exportFile(ctx, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

func (s *Store) exportFile(ctx context.Context, opts QueryOptions) (ExportFile, error) {
	opts.MaxResults = exportLimit
	events, err := s.Events(ctx, opts)
	if err != nil {
		return ExportFile{}, fmt.Errorf("querying for export: %w", err)
	}

	doc := ExportFile{Events: events}
	if sum, _, err := s.Status(ctx); err == nil {
		doc.Source = sum.Source
	}
	if doc.Events == nil {
		doc.Events = []types.Event{}
	}
	return doc, nil
}
