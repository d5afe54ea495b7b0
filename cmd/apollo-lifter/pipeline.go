// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/apollo-lifter/internal/glossary"
	"github.com/pdiddy/apollo-lifter/internal/lift"
	"github.com/pdiddy/apollo-lifter/internal/source"
	"github.com/pdiddy/apollo-lifter/pkg/types"
)

// sourceConfig reads the input settings from viper. A positional transcript
// argument overrides the configured one.
func sourceConfig(args []string) types.SourceConfig {
	cfg := types.SourceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:    viper.GetDuration("http.timeout"),
			UserAgent:  viper.GetString("http.user_agent"),
			MaxRetries: viper.GetInt("http.max_retries"),
		},
		Transcript: viper.GetString("transcript"),
		Glossary:   viper.GetString("glossary"),
	}
	if len(args) > 0 {
		cfg.Transcript = args[0]
	}
	return cfg
}

func storeConfig() types.StoreConfig {
	return types.StoreConfig{
		DBPath:     viper.GetString("db"),
		MaxResults: viper.GetInt("query.max_results"),
	}
}

// liftTranscript loads the glossary, opens the transcript, and lifts it.
func liftTranscript(ctx context.Context, cfg types.SourceConfig) (*lift.Result, error) {
	if cfg.Transcript == "" {
		return nil, fmt.Errorf("no transcript: pass one as an argument or set --transcript")
	}
	opener := source.NewOpener(cfg.HTTPConfig, logger)

	g, err := glossary.Load(ctx, opener, cfg.Glossary)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded glossary", zap.String("location", cfg.Glossary), zap.Int("terms", len(g)))

	rc, err := opener.Open(ctx, cfg.Transcript)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	res, err := lift.Transcript(ctx, rc, g, logger.With(zap.String("transcript", cfg.Transcript)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Transcript, err)
	}
	return res, nil
}

// openOutput returns stdout for "" or "-", otherwise a created file. The
// returned close function must be called when writing is done.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output %s: %w", path, err)
	}
	return f, f.Close, nil
}
