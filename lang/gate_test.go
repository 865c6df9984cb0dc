package lang

import "testing"

func TestDefaultGate(t *testing.T) {
	fn := func(string) any { return nil }

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"number", 1.0, true},
		{"map", map[string]any{}, true},
		{"func", fn, false},
		{"Func", Func(func(string) (any, error) { return nil, nil }), false},
		{"marked func", Mark(fn), true},
		{"processable", widget{ok: true}, true},
		{"unprocessable", widget{ok: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultGate.Supported(tt.value); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMark(t *testing.T) {
	v := Mark(Mark(3.0))
	if !IsMarked(v) {
		t.Fatal("expected marked value")
	}

	if Unmark(v) != 3.0 {
		t.Errorf("expected a single layer of marking, got %#v", Unmark(v))
	}

	if Unmark(4.0) != 4.0 {
		t.Error("unmarked value changed")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Set("b", 2.0)
	r.Set("a", 1.0)

	if v, ok := r.Get("a"); !ok || v != 1.0 {
		t.Errorf("unexpected Get result %v, %v", v, ok)
	}

	if keys := r.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("unexpected keys %v", keys)
	}

	r.Delete("a")

	if _, ok := r.Member("a"); ok {
		t.Error("expected a to be deleted")
	}

	got, err := Evaluate(t.Context(), "b", WithScope(r))
	if err != nil || got != 2.0 {
		t.Errorf("unexpected result %v, %v", got, err)
	}
}
