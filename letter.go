package markchain

import (
	"iter"
	"slices"
	"strings"
)

// lineSeparator splits and joins letter lines.
const lineSeparator = "\n"

// Letter is the mutable line buffer a handler chain works on.
// Handlers receive a *Letter and mutate it in place; they must not keep the
// pointer once their step returns.
//
// The zero value is a letter with no lines. NewLetter always yields at least
// one line.
//
// A Letter is not safe for concurrent use.
type Letter struct {
	lines   []string
	handled bool
}

// NewLetter splits text on "\n" into lines.
// An empty string yields a single empty line.
func NewLetter(text string) *Letter {
	return &Letter{lines: strings.Split(text, lineSeparator)}
}

// String joins the current lines with "\n". It does not modify the letter.
func (l *Letter) String() string {
	return strings.Join(l.lines, lineSeparator)
}

// Set replaces every line by re-splitting text.
func (l *Letter) Set(text string) {
	l.lines = strings.Split(text, lineSeparator)
}

// Len returns the number of lines.
func (l *Letter) Len() int {
	return len(l.lines)
}

// Line returns the line at index i.
// Returns false if i is out of range.
func (l *Letter) Line(i int) (string, bool) {
	if i < 0 || i >= len(l.lines) {
		return "", false
	}
	return l.lines[i], true
}

// Lines returns an iterator over the lines as they are when iteration starts.
// Each range over the result takes a fresh snapshot, so mutations made
// before it starts are visible and mutations made during it are not.
func (l *Letter) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		snapshot := slices.Clone(l.lines)
		for _, line := range snapshot {
			if !yield(line) {
				return
			}
		}
	}
}

// Map replaces every line with fn(line).
func (l *Letter) Map(fn func(string) string) {
	for i, line := range l.lines {
		l.lines[i] = fn(line)
	}
}

// AppendToLast concatenates s onto the last line.
// Does nothing if the letter has no lines.
func (l *Letter) AppendToLast(s string) {
	if len(l.lines) == 0 {
		return
	}
	l.lines[len(l.lines)-1] += s
}

// PrependToFirst concatenates s before the first line.
// If the letter has no lines, s becomes its only line.
func (l *Letter) PrependToFirst(s string) {
	if len(l.lines) == 0 {
		l.lines = append(l.lines, s)
		return
	}
	l.lines[0] = s + l.lines[0]
}

// AppendLine adds line after the last line.
func (l *Letter) AppendLine(line string) {
	l.lines = append(l.lines, line)
}

// AppendLines adds lines after the last line, in order.
func (l *Letter) AppendLines(lines ...string) {
	l.lines = append(l.lines, lines...)
}

// PrependLine inserts line before the first line.
func (l *Letter) PrependLine(line string) {
	l.lines = slices.Insert(l.lines, 0, line)
}

// PrependLines inserts lines before the first line as one block, keeping
// their order. The caller's slice is never modified or retained.
func (l *Letter) PrependLines(lines ...string) {
	l.lines = slices.Concat(lines, l.lines)
}

// Handled reports whether a chain has already run over this letter.
func (l *Letter) Handled() bool {
	return l.handled
}
