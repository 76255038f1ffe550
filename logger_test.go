package euclid

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerFailures(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := NewLine(0, 0, 1); err == nil {
		t.Fatal("expected an error")
	}
	out := buf.String()
	if !strings.Contains(out, "op=NewLine") {
		t.Errorf("log output %q doesn't name the operation", out)
	}
	if !strings.Contains(out, "degenerate construction") {
		t.Errorf("log output %q doesn't contain the error kind", out)
	}

	buf.Reset()
	if _, err := NewLine(1, 0, 1); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("successful operation logged %q", buf.String())
	}
}

func TestLoggerReset(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
	InterLL(Line{1, 0, 0}, Line{2, 0, 1})
	if buf.Len() != 0 {
		t.Errorf("reset logger still wrote %q", buf.String())
	}
}
