// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package supervisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sentinel-lite/sentinel-lite/internal/logging"
)

// countingService runs until its context is canceled, counting starts.
type countingService struct {
	started chan struct{}
}

func (c *countingService) Serve(ctx context.Context) error {
	select {
	case c.started <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return ctx.Err()
}

func (c *countingService) String() string { return "counting-service" }

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.FailureThreshold != 5.0 || cfg.FailureDecay != 30.0 {
		t.Errorf("unexpected failure policy: %+v", cfg)
	}
	if cfg.FailureBackoff != 15*time.Second || cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected timeouts: %+v", cfg)
	}
}

func TestNewAppliesDefaultsForZeroValues(t *testing.T) {
	t.Parallel()

	tree := New(logging.NewSlogLogger(), Config{})
	if tree.config.FailureThreshold != 5.0 {
		t.Errorf("expected default threshold, got %v", tree.config.FailureThreshold)
	}
	if tree.config.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected default shutdown timeout, got %v", tree.config.ShutdownTimeout)
	}
}

func TestTreeRunsAndStopsService(t *testing.T) {
	t.Parallel()

	tree := New(logging.NewSlogLogger(), DefaultConfig())

	svc := &countingService{started: make(chan struct{}, 1)}
	tree.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	select {
	case <-svc.started:
	case <-time.After(2 * time.Second):
		t.Fatal("service never started")
	}

	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected supervisor error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop after cancellation")
	}
}
