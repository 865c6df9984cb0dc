package profile

import (
	"slices"
	"testing"
)

func TestMake(t *testing.T) {
	p := Make(WithMode("cpu"), WithPath("/tmp/x"), WithQuiet(true))

	if p.Mode != "cpu" || p.Path != "/tmp/x" || !p.Quiet {
		t.Errorf("unexpected profiler %+v", p)
	}
}

func TestStart_NoMode(t *testing.T) {
	s := Make().Start()
	if _, ok := s.(ignore); !ok {
		t.Errorf("expected no-op controller, got %T", s)
	}

	s.Stop()
}

func TestStart_UnknownMode(t *testing.T) {
	s := Make(WithMode("bogus")).Start()
	if _, ok := s.(ignore); !ok {
		t.Errorf("expected no-op controller, got %T", s)
	}
}

func TestModes_Sorted(t *testing.T) {
	if m := Modes(); !slices.IsSorted(m) {
		t.Errorf("expected sorted modes, got %v", m)
	}
}
