package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"Info", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"info+2", LevelInfo + 2},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		label string
	}{
		{LevelTrace, "trace", "trace"},
		{LevelWarn, "warn", "warn"},
		{LevelError, "error", "error"},
		{LevelInfo + 2, "Level(2)", "info+2"},
		{LevelError + 1, "Level(9)", "error+1"},
		{LevelTrace - 1, "Level(-9)", "trace-1"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("expected name %q, got %q", tt.name, got)
		}

		if got := tt.level.label(); got != tt.label {
			t.Errorf("expected label %q, got %q", tt.label, got)
		}
	}

	if got := Format(5).String(); got != "Format(5)" {
		t.Errorf("unexpected name for unknown format %q", got)
	}

	levels := slices.Collect(Levels())
	if want := []string{"trace", "debug", "info", "warn", "error"}; !slices.Equal(levels, want) {
		t.Errorf("expected %v, got %v", want, levels)
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON || ParseFormat("text") != FormatText {
		t.Error("named formats not recognized")
	}

	if ParseFormat("xml") != DefaultFormat {
		t.Error("expected default for unknown format")
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("unexpected formats %v", got)
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
		WithTimeLayout("none"))

	logger.Trace("step", slog.Int("n", 1))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if rec["level"] != "TRACE" || rec["msg"] != "step" || rec["n"] != 1.0 {
		t.Errorf("unexpected record %v", rec)
	}

	if _, ok := rec["time"]; ok {
		t.Error("expected timestamp to be omitted")
	}

	buf.Reset()

	quiet := logger.Wrap(WithLevel(LevelError))
	quiet.Warn("dropped")

	if buf.Len() != 0 {
		t.Errorf("expected no output below level, got %q", buf.String())
	}

	if quiet.Level() != LevelError || logger.Level() != LevelTrace {
		t.Error("Wrap modified the original logger")
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var logger Logger

	logger.Error("nothing happens")
	logger.With(slog.String("k", "v")).Info("still nothing")

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Error("unexpected zero-value configuration")
	}
}

func TestLogger_Tee(t *testing.T) {
	var out, tee bytes.Buffer

	logger := Make(&out,
		WithLevel(LevelInfo),
		WithPretty(true),
		WithTee(&tee)).With(slog.String("component", "test"))

	logger.Info("hello", slog.Group("req", slog.Int("id", 7)))

	if !strings.Contains(out.String(), "req.id") {
		t.Errorf("expected flattened group in pretty output, got %q", out.String())
	}

	var rec map[string]any
	if err := json.Unmarshal(tee.Bytes(), &rec); err != nil {
		t.Fatalf("tee is not JSON %q: %v", tee.String(), err)
	}

	if rec["msg"] != "hello" || rec["component"] != "test" {
		t.Errorf("unexpected tee record %v", rec)
	}
}

func TestPrettyJSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(true),
		WithLevel(LevelDebug),
		WithTimeLayout(""))

	logger.Debug("multi", slog.Bool("ok", true), slog.Any("nothing", nil))

	out := buf.String()
	if !strings.HasPrefix(out, "{\n") || !strings.HasSuffix(out, "\n}\n") {
		t.Errorf("unexpected layout %q", out)
	}

	for _, want := range []string{"DEBUG", "multi", "true", "null"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestConfig(t *testing.T) {
	saved := Default()
	t.Cleanup(func() { defaultLog.Store(&saved) })

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelDebug), WithFormat(FormatText))
	Debug("configured", slog.String("k", "v"))

	if !strings.Contains(buf.String(), "msg=configured") ||
		!strings.Contains(buf.String(), "k=v") {
		t.Errorf("unexpected output %q", buf.String())
	}

	if Default().Level() != LevelDebug {
		t.Errorf("expected debug level, got %v", Default().Level())
	}
}
