package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_LevelsReachOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "push batch", "count", 3)
	log.Info(ctx, "engine started", "user", "u1")
	log.Warn(ctx, "retrying push", "attempt", 2)
	log.Error(ctx, "push failed", "collection", "sessions")

	out := buf.String()

	for _, want := range []string{
		"level=DEBUG", "msg=\"push batch\"", "count=3",
		"level=INFO", "msg=\"engine started\"", "user=u1",
		"level=WARN", "msg=\"retrying push\"", "attempt=2",
		"level=ERROR", "msg=\"push failed\"", "collection=sessions",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSlogLogger_WithCarriesAttributes(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	scoped := log.With("component", "sync", "user", "u1")
	scoped.Info(ctx, "subscribed", "collection", "exposures")

	out := buf.String()
	for _, want := range []string{"component=sync", "user=u1", "collection=exposures", "msg=subscribed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestNopLogger_AllLevelsSafe(t *testing.T) {
	var log NopLogger
	ctx := context.TODO()

	log.Debug(ctx, "ignored")
	log.Info(ctx, "ignored")
	log.Warn(ctx, "ignored")
	log.Error(ctx, "ignored")
	log.With("k", "v").Info(ctx, "ignored")
}
