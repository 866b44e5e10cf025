package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	now := time.Now()
	logger.Info("hello world", "foo", "value")

	output := buf.String()
	for _, want := range []string{"INFO", "hello world", "foo=value", now.Format(time.Kitchen)} {
		if !strings.Contains(output, want) {
			t.Errorf("output %q missing %q", output, want)
		}
	}
	if !strings.HasSuffix(output, "\n") {
		t.Errorf("output should end with newline: %q", output)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("common", "attr")

	logger.Info("message", "local", "val")

	output := buf.String()
	if !strings.Contains(output, "common=attr") || !strings.Contains(output, "local=val") {
		t.Errorf("unexpected output: %q", output)
	}
	if strings.Index(output, "common=attr") > strings.Index(output, "local=val") {
		t.Errorf("handler attrs should precede record attrs: %q", output)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("store")

	logger.Info("loaded", "workspaces", 2, slog.Group("pointer", "path", "maestro.json"))

	output := buf.String()
	if !strings.Contains(output, "store.workspaces=2") {
		t.Errorf("expected group prefix, got %q", output)
	}
	if !strings.Contains(output, "store.pointer.path=maestro.json") {
		t.Errorf("expected nested group prefix, got %q", output)
	}
}

func TestHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	logger.Error("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info should be filtered")
	}
	if !strings.Contains(buf.String(), "ERROR") {
		t.Error("error should be logged")
	}
}

func TestHandler_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(t.Context(), LevelTrace, "deep detail")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE level name, got %q", buf.String())
	}
}

func TestHandler_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, nil)).Warn("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("non-TTY output should not contain ANSI codes: %q", buf.String())
	}
}

func TestMultiHandler(t *testing.T) {
	var text, js bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&js, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("run", 1)

	logger.Debug("debug only in file")
	logger.Warn("everywhere")

	if strings.Contains(text.String(), "debug only") {
		t.Error("text handler should filter debug")
	}
	if !strings.Contains(js.String(), "debug only in file") {
		t.Error("json handler should receive debug")
	}
	if !strings.Contains(text.String(), "everywhere") || !strings.Contains(js.String(), "everywhere") {
		t.Error("warn should reach both handlers")
	}
	if !strings.Contains(js.String(), `"run":1`) {
		t.Errorf("attrs should propagate: %s", js.String())
	}
}
