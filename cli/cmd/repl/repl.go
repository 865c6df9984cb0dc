package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/optexpr/lang"
	"github.com/ardnew/optexpr/log"
)

const prompt = "➜ "

const helpMessage = `Enter an options record to evaluate it, or a command:

  :help     Print this message
  :scope    Print the scope
  :funcs    List the available functions
  :history  List previous input
  :clear    Clear screen
  :quit     Exit

Completions appear as you type. Tab and Shift-Tab cycle through them,
Enter accepts the selected one. Up and Down walk the history.
Ctrl-C on an empty line or Ctrl-D exits.`

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedMatchStyle = selectedStyle.Bold(true)
)

// Env is the evaluation environment of a REPL session.
type Env struct {
	Scope  any
	Funcs  map[string]any
	Logger log.Logger
}

func (e *Env) options() []lang.Option {
	return []lang.Option{
		lang.WithScope(e.Scope),
		lang.WithFuncs(e.Funcs),
		lang.WithLogger(e.Logger),
	}
}

// Run starts an interactive session that evaluates each entered line as an
// options record.
func Run(
	ctx context.Context,
	env Env,
	history *History,
	opts ...tea.ProgramOption,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if err := history.Load(); err != nil {
		env.Logger.WarnContext(ctx, "could not load history",
			slog.Any("error", err))
	}

	env.Logger.TraceContext(ctx, "repl start",
		slog.Int("history", history.Len()),
		slog.Int("funcs", len(env.Funcs)),
	)

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)

	_, err = tea.NewProgram(newModel(ctx, &env, history), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}

const defaultWidth = 80

// model is the Bubble Tea model for the REPL.
type model struct {
	ctx        context.Context
	env        *Env
	input      textinput.Model
	history    *History
	historyIdx int
	matches    fuzzy.Matches
	wordStart  int // byte offset of the word being completed
	wordEnd    int
	selected   int // index into matches while tab cycling, or -1
	width      int
	quitting   bool
}

func newModel(ctx context.Context, env *Env, history *History) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth

	return model{
		ctx:        ctx,
		env:        env,
		input:      ti,
		history:    history,
		historyIdx: history.Len(),
		selected:   -1,
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(prompt)-2, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	switch {
	case m.historyIdx < m.history.Len():
		b.WriteString(hintStyle.Render(
			fmt.Sprintf("history %d/%d", m.historyIdx+1, m.history.Len())))

	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render("Type an options record, or :help"))

	default:
		b.WriteString(renderCandidateBar(m.matches, m.env.Funcs, m.selected, m.width))
	}

	b.WriteByte('\n')

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.historyIdx = m.history.Len()
		m.refresh()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.selected >= 0 {
			m.refresh()

			return m, nil
		}

		return m.submit()

	case tea.KeyTab:
		m.cycle(1)

		return m, nil

	case tea.KeyShiftTab:
		m.cycle(-1)

		return m, nil

	case tea.KeyUp:
		m.recall(-1)

		return m, nil

	case tea.KeyDown:
		m.recall(1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// refresh recomputes completion matches for the current input and ends any
// tab cycle.
func (m *model) refresh() {
	m.selected = -1
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()
}

// cycle selects the next (dir > 0) or previous match and writes it into the
// input in place of the word being completed.
func (m *model) cycle(dir int) {
	if len(m.matches) == 0 {
		return
	}

	n := len(m.matches)
	if m.selected < 0 && dir < 0 {
		m.selected = n - 1
	} else {
		m.selected = ((m.selected+dir)%n + n) % n
	}

	candidate := m.matches[m.selected].Str
	value := m.input.Value()

	m.input.SetValue(value[:m.wordStart] + candidate + value[m.wordEnd:])
	m.wordEnd = m.wordStart + len(candidate)
	m.input.SetCursor(m.wordEnd)
}

// recall moves through the history; moving past the newest entry clears
// the input.
func (m *model) recall(dir int) {
	idx := min(max(m.historyIdx+dir, 0), m.history.Len())
	if idx == m.historyIdx {
		return
	}

	m.historyIdx = idx

	line, err := m.history.Entry(idx)
	if err != nil {
		line = ""
	}

	m.input.SetValue(line)
	m.input.CursorEnd()
	m.matches, m.selected = nil, -1
}

// submit handles a completed line.
func (m model) submit() (model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())

	m.input.SetValue("")
	m.matches, m.selected = nil, -1

	if line == "" {
		return m, nil
	}

	if err := m.history.Add(line); err != nil {
		m.env.Logger.DebugContext(m.ctx, "history write failed",
			slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	echo := promptStyle.Render(prompt) + inputStyle.Render(line)
	out, action := m.respond(line)

	switch action {
	case actionQuit:
		m.quitting = true

		return m, tea.Sequence(tea.Println(echo), tea.Quit)

	case actionClear:
		return m, tea.ClearScreen
	}

	return m, tea.Println(echo + "\n" + out)
}

type action int

const (
	actionNone action = iota
	actionClear
	actionQuit
)

// respond returns the rendered response to a line of input.
func (m model) respond(line string) (string, action) {
	if cmd, ok := strings.CutPrefix(line, ":"); ok {
		switch strings.TrimSpace(cmd) {
		case "help":
			return hintStyle.Render(helpMessage), actionNone
		case "quit", "exit":
			return "", actionQuit
		case "clear":
			return "", actionClear
		case "scope":
			return resultStyle.Render(lang.FormatResult(scopeValue(m.env.Scope))), actionNone
		case "funcs":
			names := make([]string, 0, len(m.env.Funcs))
			for name := range m.env.Funcs {
				names = append(names, name+"()")
			}

			slices.Sort(names)

			return resultStyle.Render(strings.Join(names, "  ")), actionNone
		case "history":
			var sb strings.Builder

			for i, entry := range m.history.Entries() {
				fmt.Fprintf(&sb, "%4d  %s\n", i+1, entry)
			}

			return hintStyle.Render(strings.TrimSuffix(sb.String(), "\n")), actionNone
		}

		return errorStyle.Render("unknown command: " + line), actionNone
	}

	v, err := lang.Evaluate(m.ctx, line, m.env.options()...)
	if err != nil {
		var pe *lang.ParseError
		if errors.As(err, &pe) {
			return errorStyle.Render(pe.Detail()) + "\n" + hintStyle.Render(pe.Snippet()), actionNone
		}

		return errorStyle.Render(err.Error()), actionNone
	}

	return resultStyle.Render(lang.FormatResult(v)), actionNone
}

// scopeValue returns a printable snapshot of the scope.
func scopeValue(scope any) any {
	r, ok := scope.(*lang.Registry)
	if !ok {
		return scope
	}

	snapshot := make(map[string]any)

	for _, k := range r.Keys() {
		if v, ok := r.Get(k); ok {
			snapshot[k] = v
		}
	}

	return snapshot
}
