package markchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-markchain/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.TextPreprocessor = (*pipeline.LinePreprocessor)(nil)
	_ pipeline.HTMLConverter    = (*pipeline.GoldmarkConverter)(nil)
)

// Processor runs a chain over raw text: preprocess, build a Letter, Handle,
// render. It keeps no per-call state.
type Processor struct {
	preprocessor pipeline.TextPreprocessor
	logger       Logger
}

// NewProcessor creates a Processor with line ending normalization and no
// logging. Use options to customize behavior.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		preprocessor: &pipeline.LinePreprocessor{},
		logger:       nopLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs in.Chain over in.Text and returns the rendered result.
func (p *Processor) Process(ctx context.Context, in Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if isNil(in.Chain) {
		return "", ErrNilHandler
	}

	text := p.preprocessor.Preprocess(ctx, in.Text)
	letter := NewLetter(text)
	p.logger.Debug("chain start", "lines", letter.Len())

	if err := Handle(in.Chain, letter); err != nil {
		return "", fmt.Errorf("handling chain: %w", err)
	}

	p.logger.Debug("chain done",
		"handlers", strings.Join(Describe(in.Chain), " > "),
		"lines", letter.Len(),
	)

	return pipeline.ConvertMarkPlaceholders(letter.String()), nil
}

// Render is a shortcut for NewProcessor().Process with a background context.
func Render(text string, chain Handler) (string, error) {
	return NewProcessor().Process(context.Background(), Input{Text: text, Chain: chain})
}
