package markchain

import (
	"context"
	"fmt"

	"github.com/alnah/go-markchain/internal/pipeline"
)

// Markdown renders the letter from Markdown to an HTML fragment before inner
// handlers run. Code fences are syntax highlighted with CSS classes.
//
// A rendering failure leaves the letter unchanged; Handle reports it once
// the chain completes.
type Markdown struct {
	Base
	conv pipeline.HTMLConverter
	err  error
}

// NewMarkdown creates a Markdown handler followed by next.
func NewMarkdown(next Handler) *Markdown {
	return &Markdown{Base: Base{next: next}, conv: pipeline.NewGoldmarkConverter()}
}

// PreHandle replaces the letter with its HTML rendering.
func (m *Markdown) PreHandle(l *Letter) {
	m.err = nil
	html, err := m.conv.ToHTML(context.Background(), l.String())
	if err != nil {
		m.err = fmt.Errorf("%w: %v", ErrMarkdownRender, err)
		return
	}
	l.Set(html)
}

// Err returns the failure from the last PreHandle, if any.
func (m *Markdown) Err() error { return m.err }

// Name implements namer.
func (m *Markdown) Name() string { return "markdown" }
