package repl

import (
	"context"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/optexpr/lang"
)

// commands are the available REPL commands, entered with a leading colon.
var commands = []string{"clear", "funcs", "help", "history", "quit", "scope"}

// isWordBoundary reports whether r delimits words for completion purposes:
// whitespace and the punctuators of the options record grammar.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		',', ':', '\'', '"':
		return true
	}

	return false
}

// wordBounds returns the word at the cursor position and its byte
// boundaries within input. The word is empty when the cursor sits on a
// boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// parentPath returns the dotted member chain leading up to the word that
// starts at wordStart. For "{ a: theme.co" with the word "co", the parent
// path is "theme". Top-level words have an empty parent path.
func parentPath(input string, wordStart int) string {
	prefix := input[:wordStart]
	if !strings.HasSuffix(prefix, ".") {
		return ""
	}

	prefix = strings.TrimRight(prefix, ".")
	pos := len(prefix)

	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(prefix[:pos])
		if r != '.' && isWordBoundary(r) {
			break
		}

		pos -= size
	}

	return strings.Trim(prefix[pos:], ".")
}

// keywords are the reserved words that may start a value.
var keywords = []string{"null", "true", "false", "this"}

// candidates returns the names that complete a word under parent. The top
// level offers scope keys, functions and keywords; otherwise the parent
// chain is evaluated and the keys of the resulting object are offered.
func (e *Env) candidates(ctx context.Context, parent string) []string {
	if parent == "" {
		names := keysOf(e.Scope)
		names = append(names, slices.Sorted(maps.Keys(e.Funcs))...)

		return append(names, keywords...)
	}

	v, err := lang.Evaluate(ctx, parent,
		lang.WithScope(e.Scope),
		lang.WithFuncs(e.Funcs))
	if err != nil {
		return nil
	}

	return keysOf(v)
}

// keysOf returns the sorted member names of an object value.
func keysOf(v any) []string {
	switch v := v.(type) {
	case map[string]any:
		return slices.Sorted(maps.Keys(v))
	case *lang.Registry:
		return v.Keys()
	}

	return nil
}

// computeMatches ranks the candidates for the word at the cursor. An empty
// word after a dot lists every member; an empty top-level word lists none.
func (m model) computeMatches() (matches fuzzy.Matches, start, end int) {
	input := m.input.Value()

	word, start, end := wordBounds(input, m.input.Position())

	var candidates []string

	if cmd, ok := strings.CutPrefix(input, ":"); ok {
		if strings.ContainsAny(cmd, " \t") {
			return nil, start, end
		}

		candidates = commands
	} else {
		parent := parentPath(input, start)
		candidates = m.env.candidates(m.ctx, parent)

		if word == "" {
			if parent == "" {
				return nil, start, end
			}

			matches = make(fuzzy.Matches, len(candidates))
			for i, c := range candidates {
				matches[i] = fuzzy.Match{Str: c, Index: i}
			}

			return matches, start, end
		}
	}

	return fuzzy.Find(word, candidates), start, end
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within width. The selected candidate uses the selected style while tab
// cycling.
func renderCandidateBar(
	matches fuzzy.Matches,
	funcs map[string]any,
	selected int,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	limit := width - lipgloss.Width(ellipsis) - len(sep)

	var b strings.Builder

	for i, match := range matches {
		rendered := renderCandidate(match, funcs, i == selected)

		if i > 0 {
			if lipgloss.Width(b.String())+len(sep)+lipgloss.Width(rendered) > limit {
				b.WriteString(sep)
				b.WriteString(ellipsis)

				break
			}

			b.WriteString(sep)
		}

		b.WriteString(rendered)
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters
// highlighted. Functions are displayed with a "()" suffix.
func renderCandidate(match fuzzy.Match, funcs map[string]any, selected bool) string {
	base, highlight := suggestionStyle, matchStyle
	if selected {
		base, highlight = selectedStyle, selectedMatchStyle
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if _, ok := funcs[match.Str]; ok {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}
