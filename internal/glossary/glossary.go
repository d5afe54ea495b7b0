// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package glossary loads the Spacelog mission glossary that supplies labels
// for the terms tagged in a transcript.
package glossary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/apollo-lifter/pkg/types"
)

// Opener opens a glossary location, local or remote.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// Load opens and decodes the glossary at location. An empty location
// yields an empty glossary; a location that cannot be opened is an error.
func Load(ctx context.Context, o Opener, location string) (types.Glossary, error) {
	if location == "" {
		return types.Glossary{}, nil
	}
	rc, err := o.Open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("opening glossary %s: %w", location, err)
	}
	defer rc.Close()

	g, err := Decode(rc, IsYAML(location))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return g, nil
}

// Decode reads a glossary from r. Spacelog ships the glossary as a JSON
// object keyed by term; when yamlInput is set the same shape is read as
// YAML instead.
func Decode(r io.Reader, yamlInput bool) (types.Glossary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading glossary: %w", err)
	}

	g := types.Glossary{}
	if yamlInput {
		if err := yaml.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("parsing glossary YAML: %w", err)
		}
		return g, nil
	}
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing glossary JSON: %w", err)
	}
	return g, nil
}

// IsYAML reports whether a glossary location names a YAML file.
func IsYAML(location string) bool {
	// path.Ext works for both file paths and URL paths.
	ext := strings.ToLower(path.Ext(location))
	return ext == ".yaml" || ext == ".yml"
}

// Lookup returns the glossary entry for term. Terms match exactly as they
// are tagged in the transcript.
func Lookup(g types.Glossary, term string) (types.GlossaryEntry, bool) {
	e, ok := g[term]
	return e, ok
}
