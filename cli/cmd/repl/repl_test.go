package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/optexpr/lang"
)

func testModel(t *testing.T) model {
	t.Helper()

	env := &Env{
		Scope: map[string]any{
			"theme": map[string]any{"accent": "teal", "align": "left"},
		},
		Funcs: map[string]any{
			"select": lang.Mark(func(id string) any { return map[string]any{"id": id} }),
		},
	}

	return newModel(t.Context(), env, NewHistory(""))
}

func typeText(m model, s string) model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}

	return m
}

func TestRespond(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		line   string
		want   string
		action action
	}{
		{"{ c: theme.accent }", "{c: 'teal'}", actionNone},
		{"select('#s').id", "'#s'", actionNone},
		{"{ a: }", "unexpected rightBrace at offset 6", actionNone},
		{"unbound('x')", "function not found", actionNone},
		{":funcs", "select()", actionNone},
		{":scope", "theme: {", actionNone},
		{":help", ":quit", actionNone},
		{":bogus", "unknown command", actionNone},
		{":quit", "", actionQuit},
		{":clear", "", actionClear},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, act := m.respond(tt.line)
			if act != tt.action {
				t.Errorf("expected action %d, got %d", tt.action, act)
			}

			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in %q", tt.want, out)
			}
		})
	}
}

func TestCompletionCycle(t *testing.T) {
	m := typeText(testModel(t), "{ a: theme.")

	if len(m.matches) != 2 {
		t.Fatalf("expected 2 member matches, got %v", m.matches)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)

	if got := m.input.Value(); got != "{ a: theme.accent" {
		t.Errorf("unexpected input after tab %q", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)

	if got := m.input.Value(); got != "{ a: theme.align" {
		t.Errorf("unexpected input after second tab %q", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	if m.selected != -1 {
		t.Error("expected enter to accept the candidate")
	}

	if got := m.input.Value(); got != "{ a: theme.align" {
		t.Errorf("accepting changed the input to %q", got)
	}
}

func TestSubmitAndRecall(t *testing.T) {
	m := typeText(testModel(t), "[1, 2]")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	if cmd == nil {
		t.Fatal("expected a print command")
	}

	if m.input.Value() != "" || m.history.Len() != 1 {
		t.Fatalf("unexpected state after submit: %q, %d", m.input.Value(), m.history.Len())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)

	if got := m.input.Value(); got != "[1, 2]" {
		t.Errorf("expected recalled entry, got %q", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)

	if got := m.input.Value(); got != "" {
		t.Errorf("expected empty input past newest entry, got %q", got)
	}
}

func TestQuit(t *testing.T) {
	next, cmd := testModel(t).Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	if !next.(model).quitting || cmd == nil {
		t.Error("expected ctrl-d on empty input to quit")
	}

	if next.(model).View() != "" {
		t.Error("expected empty view after quitting")
	}
}
