package markchain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Compile-time interface implementation checks.
var (
	_ Handler = (*Upper)(nil)
	_ Handler = (*Lower)(nil)
	_ Handler = (*LineBreak)(nil)
	_ Handler = (*Indent)(nil)
	_ Handler = (*TagWrapper)(nil)
	_ Handler = (*Markdown)(nil)

	_ validator = (*TagWrapper)(nil)
	_ failer    = (*Markdown)(nil)
)

// Defaults for handler configuration.
const (
	DefaultIndentPrefix = "    "
	TabIndentPrefix     = "\t"
	DefaultBreakMarker  = "<br/>"
)

// CaseOption configures Upper and Lower.
type CaseOption func(*caseConfig)

type caseConfig struct {
	lang language.Tag
}

// WithLanguage applies language-specific case rules (e.g. Turkish dotted i).
// The default is language.Und.
func WithLanguage(lang language.Tag) CaseOption {
	return func(c *caseConfig) {
		c.lang = lang
	}
}

func newCaseConfig(opts []CaseOption) caseConfig {
	cfg := caseConfig{lang: language.Und}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Upper upper-cases every line before inner handlers run.
type Upper struct {
	Base
	lang language.Tag
}

// NewUpper creates an Upper handler followed by next (nil ends the chain).
func NewUpper(next Handler, opts ...CaseOption) *Upper {
	cfg := newCaseConfig(opts)
	return &Upper{Base: Base{next: next}, lang: cfg.lang}
}

// PreHandle upper-cases every line.
func (u *Upper) PreHandle(l *Letter) {
	// A Caser keeps state between calls; one per step keeps Upper reusable.
	c := cases.Upper(u.lang)
	l.Map(c.String)
}

// Name implements namer.
func (u *Upper) Name() string { return "upper" }

// Lower lower-cases every line before inner handlers run.
type Lower struct {
	Base
	lang language.Tag
}

// NewLower creates a Lower handler followed by next (nil ends the chain).
func NewLower(next Handler, opts ...CaseOption) *Lower {
	cfg := newCaseConfig(opts)
	return &Lower{Base: Base{next: next}, lang: cfg.lang}
}

// PreHandle lower-cases every line.
func (lw *Lower) PreHandle(l *Letter) {
	c := cases.Lower(lw.lang)
	l.Map(c.String)
}

// Name implements namer.
func (lw *Lower) Name() string { return "lower" }

// LineBreak appends a break marker to every line before inner handlers run.
type LineBreak struct {
	Base
	Marker string
}

// NewLineBreak creates a LineBreak handler using DefaultBreakMarker.
func NewLineBreak(next Handler) *LineBreak {
	return &LineBreak{Base: Base{next: next}, Marker: DefaultBreakMarker}
}

// PreHandle appends Marker to every line.
func (b *LineBreak) PreHandle(l *Letter) {
	l.Map(func(line string) string {
		return line + b.Marker
	})
}

// Name implements namer.
func (b *LineBreak) Name() string { return "break" }

// Indent prefixes every line after inner handlers have run, so it sees
// whatever they added.
type Indent struct {
	Base
	Prefix string
}

// NewIndent creates an Indent handler using DefaultIndentPrefix.
func NewIndent(next Handler) *Indent {
	return NewIndentWith(DefaultIndentPrefix, next)
}

// NewTabIndent creates an Indent handler that indents with one tab.
func NewTabIndent(next Handler) *Indent {
	return NewIndentWith(TabIndentPrefix, next)
}

// NewIndentWith creates an Indent handler with a custom prefix.
func NewIndentWith(prefix string, next Handler) *Indent {
	return &Indent{Base: Base{next: next}, Prefix: prefix}
}

// PostHandle rebuilds the letter from its current lines, each prefixed.
func (in *Indent) PostHandle(l *Letter) {
	indented := make([]string, 0, l.Len())
	for line := range l.Lines() {
		indented = append(indented, in.Prefix+line)
	}
	l.Set(strings.Join(indented, lineSeparator))
}

// Name implements namer.
func (in *Indent) Name() string {
	if in.Prefix == TabIndentPrefix {
		return "tab-indent"
	}
	return "indent"
}

// TagWrapper surrounds the letter with an opening and a closing tag line
// once inner handlers have run.
type TagWrapper struct {
	Base
	tag Tag
}

// NewTagWrapper creates a TagWrapper for tag.
//
// When indent is true, the wrapper builds and owns an Indent handler placed
// between itself and next. Everything nested inside the tag then gets one
// extra indent level while the tag lines themselves stay outside it.
func NewTagWrapper(tag Tag, indent bool, next Handler) *TagWrapper {
	if indent {
		next = NewIndent(next)
	}
	return &TagWrapper{Base: Base{next: next}, tag: tag}
}

// Tag returns the wrapped tag.
func (w *TagWrapper) Tag() Tag { return w.tag }

// PostHandle adds the opening tag as the first line and the closing tag as
// the last line.
func (w *TagWrapper) PostHandle(l *Letter) {
	l.PrependLine(w.tag.Open())
	l.AppendLine(w.tag.Close())
}

// Validate rejects tags outside the supported set.
func (w *TagWrapper) Validate() error {
	if !w.tag.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTag, string(w.tag))
	}
	return nil
}

// Name implements namer.
func (w *TagWrapper) Name() string { return "tag(" + string(w.tag) + ")" }
