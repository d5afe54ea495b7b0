// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source opens transcript and glossary inputs. A location is either
// a local file path or an http(s) URL, such as a raw file in the Spacelog
// repository.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/apollo-lifter/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 5
	defaultUserAgent  = "apollo-lifter"
)

// Opener opens input locations.
type Opener struct {
	client     *http.Client
	userAgent  string
	maxRetries int
	logger     *zap.Logger
}

// NewOpener returns an Opener configured by cfg. Zero fields take defaults.
func NewOpener(cfg types.HTTPConfig, logger *zap.Logger) *Opener {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}
	return &Opener{
		client:     &http.Client{Timeout: timeout},
		userAgent:  ua,
		maxRetries: retries,
		logger:     logger,
	}
}

// IsRemote reports whether location is an http(s) URL.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Open returns a reader for location. The caller must close it.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !IsRemote(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", location, err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", location, err)
	}
	req.Header.Set("User-Agent", o.userAgent)

	o.logger.Debug("fetching", zap.String("url", location))
	resp, err := o.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", location, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: HTTP %d", location, resp.StatusCode)
	}
	return resp.Body, nil
}
