package markchain

import (
	"slices"
	"testing"
)

func TestNewLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []string
	}{
		{"empty string yields one empty line", "", []string{""}},
		{"single line", "hello", []string{"hello"}},
		{"two lines", "a\nb", []string{"a", "b"}},
		{"trailing newline keeps empty last line", "a\n", []string{"a", ""}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := NewLetter(tt.input)
			if l.Len() != len(tt.wantLines) {
				t.Fatalf("Len() = %d, want %d", l.Len(), len(tt.wantLines))
			}
			if got := slices.Collect(l.Lines()); !slices.Equal(got, tt.wantLines) {
				t.Errorf("Lines() = %q, want %q", got, tt.wantLines)
			}
		})
	}
}

func TestLetter_StringRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"one",
		"Object Recursion\nThis is a concept came up in 1998",
		"a\n\n\nb",
		"\n",
		"  leading\ttabs  \n\ttrailing  ",
	}

	for _, input := range inputs {
		if got := NewLetter(input).String(); got != input {
			t.Errorf("NewLetter(%q).String() = %q", input, got)
		}
	}
}

func TestLetter_StringIsPure(t *testing.T) {
	t.Parallel()

	l := NewLetter("a\nb")
	first := l.String()
	second := l.String()
	if first != second || l.Len() != 2 {
		t.Errorf("String() changed letter: %q then %q, Len() = %d", first, second, l.Len())
	}
}

func TestLetter_Set(t *testing.T) {
	t.Parallel()

	l := NewLetter("old")
	l.Set("x\ny\nz")

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if got := l.String(); got != "x\ny\nz" {
		t.Errorf("String() = %q, want %q", got, "x\ny\nz")
	}
}

func TestLetter_Line(t *testing.T) {
	t.Parallel()

	l := NewLetter("a\nb")

	tests := []struct {
		index  int
		want   string
		wantOK bool
	}{
		{0, "a", true},
		{1, "b", true},
		{2, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := l.Line(tt.index)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Line(%d) = (%q, %v), want (%q, %v)", tt.index, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLetter_LinesRestartable(t *testing.T) {
	t.Parallel()

	l := NewLetter("a\nb")
	seq := l.Lines()

	first := slices.Collect(seq)
	l.AppendLine("c")
	second := slices.Collect(seq)

	if !slices.Equal(first, []string{"a", "b"}) {
		t.Errorf("first pass = %q, want [a b]", first)
	}
	if !slices.Equal(second, []string{"a", "b", "c"}) {
		t.Errorf("second pass = %q, want [a b c] (fresh pass sees mutation)", second)
	}
}

func TestLetter_LinesSnapshotDuringIteration(t *testing.T) {
	t.Parallel()

	l := NewLetter("a\nb")

	var seen []string
	for line := range l.Lines() {
		seen = append(seen, line)
		l.Map(func(s string) string { return s + "!" })
		l.AppendLine("extra")
	}

	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("iteration saw %q, want [a b]", seen)
	}
}

func TestLetter_LinesEarlyBreak(t *testing.T) {
	t.Parallel()

	l := NewLetter("a\nb\nc")
	var seen []string
	for line := range l.Lines() {
		seen = append(seen, line)
		if line == "b" {
			break
		}
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("seen = %q, want [a b]", seen)
	}
}

func TestLetter_Map(t *testing.T) {
	t.Parallel()

	l := NewLetter("a\nb")
	l.Map(func(s string) string { return "<" + s + ">" })

	if got := l.String(); got != "<a>\n<b>" {
		t.Errorf("String() = %q, want %q", got, "<a>\n<b>")
	}
}

func TestLetter_AppendToLast(t *testing.T) {
	t.Parallel()

	t.Run("appends to last line only", func(t *testing.T) {
		t.Parallel()

		l := NewLetter("a\nb")
		l.AppendToLast("!")
		if got := l.String(); got != "a\nb!" {
			t.Errorf("String() = %q, want %q", got, "a\nb!")
		}
	})

	t.Run("no-op on empty letter", func(t *testing.T) {
		t.Parallel()

		var l Letter
		l.AppendToLast("!")
		if l.Len() != 0 {
			t.Errorf("Len() = %d, want 0", l.Len())
		}
	})
}

func TestLetter_PrependToFirst(t *testing.T) {
	t.Parallel()

	t.Run("prepends to first line only", func(t *testing.T) {
		t.Parallel()

		l := NewLetter("a\nb")
		l.PrependToFirst("> ")
		if got := l.String(); got != "> a\nb" {
			t.Errorf("String() = %q, want %q", got, "> a\nb")
		}
	})

	t.Run("appends a line on empty letter", func(t *testing.T) {
		t.Parallel()

		var l Letter
		l.PrependToFirst("first")
		if l.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", l.Len())
		}
		if got := l.String(); got != "first" {
			t.Errorf("String() = %q, want %q", got, "first")
		}
	})
}

func TestLetter_AppendLines(t *testing.T) {
	t.Parallel()

	l := NewLetter("a")
	l.AppendLine("b")
	l.AppendLines("c", "d")

	if got := l.String(); got != "a\nb\nc\nd" {
		t.Errorf("String() = %q, want %q", got, "a\nb\nc\nd")
	}
}

func TestLetter_PrependLines(t *testing.T) {
	t.Parallel()

	t.Run("single line", func(t *testing.T) {
		t.Parallel()

		l := NewLetter("b")
		l.PrependLine("a")
		if got := l.String(); got != "a\nb" {
			t.Errorf("String() = %q, want %q", got, "a\nb")
		}
	})

	t.Run("block keeps its order", func(t *testing.T) {
		t.Parallel()

		l := NewLetter("c\nd")
		l.PrependLines("a", "b")
		if got := l.String(); got != "a\nb\nc\nd" {
			t.Errorf("String() = %q, want %q", got, "a\nb\nc\nd")
		}
	})

	t.Run("caller slice untouched", func(t *testing.T) {
		t.Parallel()

		block := make([]string, 2, 10)
		block[0], block[1] = "x", "y"

		l := NewLetter("z")
		l.PrependLines(block...)
		l.AppendLine("tail")

		if !slices.Equal(block, []string{"x", "y"}) {
			t.Errorf("caller slice modified: %q", block)
		}
		if got := block[:3][2]; got != "" {
			t.Errorf("caller backing array written: %q", got)
		}
	})
}
