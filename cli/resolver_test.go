package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolve_Flatten(t *testing.T) {
	const input = `{
		log: { level: 'debug', pretty: false, time_layout: 'kitchen' },
		count: 3,
		tags: ['a', 'b', 2],
		skip: null,
	}`

	r, err := resolve(t.Context())(strings.NewReader(input))
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	cfg, ok := r.(config)
	if !ok {
		t.Fatalf("expected config, got %T", r)
	}

	want := map[string]any{
		"log-level":       "debug",
		"log-pretty":      false,
		"log-time-layout": "kitchen",
		"count":           "3",
		"tags":            "a,b,2",
	}

	if len(cfg) != len(want) {
		t.Errorf("expected %d entries, got %v", len(want), cfg)
	}

	for k, v := range want {
		if cfg[k] != v {
			t.Errorf("%s: expected %#v, got %#v", k, v, cfg[k])
		}
	}
}

func TestResolve_Invalid(t *testing.T) {
	for _, input := range []string{"{ a: }", "'scalar'", "unknown.member"} {
		r, err := resolve(t.Context())(strings.NewReader(input))
		if err != nil {
			t.Fatalf("%q: resolve error: %v", input, err)
		}

		if cfg := r.(config); len(cfg) != 0 {
			t.Errorf("%q: expected empty config, got %v", input, cfg)
		}
	}
}

func TestConfig_Kong(t *testing.T) {
	var cli struct {
		Log struct {
			Level      string `default:"warn"`
			TimeLayout string `default:"RFC3339"`
			Pretty     bool   `default:"true" negatable:""`
		} `embed:"" prefix:"log-"`
		Count int
		Tags  []string
	}

	r, err := resolve(t.Context())(strings.NewReader(
		"{ log: { level: 'info', time_layout: 'none', pretty: false }, count: 4, tags: ['x', 'y'] }",
	))
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	parser, err := kong.New(&cli, kong.Resolvers(r), kong.Exit(func(int) {}))
	if err != nil {
		t.Fatalf("kong error: %v", err)
	}

	if _, err := parser.Parse([]string{"--log-level=error"}); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if cli.Log.Level != "error" {
		t.Errorf("command line should override config, got level %q", cli.Log.Level)
	}

	if cli.Log.TimeLayout != "none" {
		t.Errorf("expected underscore key to resolve, got %q", cli.Log.TimeLayout)
	}

	if cli.Log.Pretty {
		t.Error("expected pretty disabled by config")
	}

	if cli.Count != 4 {
		t.Errorf("expected count 4, got %d", cli.Count)
	}

	if len(cli.Tags) != 2 || cli.Tags[0] != "x" || cli.Tags[1] != "y" {
		t.Errorf("unexpected tags %v", cli.Tags)
	}
}
