package markchain

import "github.com/alnah/go-markchain/internal/pipeline"

// Input contains processing parameters.
type Input struct {
	Text  string  // Raw text (may be empty, which yields one empty line)
	Chain Handler // Outermost handler (required)
}

// Logger receives debug output. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the debug logger.
// Panics if l is nil (programmer error).
func WithLogger(l Logger) Option {
	if l == nil {
		panic("markchain: WithLogger logger must not be nil")
	}
	return func(p *Processor) {
		p.logger = l
	}
}

// WithHighlights turns ==text== into <mark>text</mark> in the output.
// Highlights are protected from every handler, so case folding and
// indentation never touch the mark tags themselves.
func WithHighlights() Option {
	return func(p *Processor) {
		p.preprocessor = &pipeline.LinePreprocessor{Highlights: true}
	}
}

// WithPreprocessor replaces input preprocessing.
// Panics if pp is nil (programmer error).
func WithPreprocessor(pp pipeline.TextPreprocessor) Option {
	if pp == nil {
		panic("markchain: WithPreprocessor preprocessor must not be nil")
	}
	return func(p *Processor) {
		p.preprocessor = pp
	}
}
