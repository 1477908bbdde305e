package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// Case folding, indentation and Goldmark all leave them untouched, so
// highlights survive the chain and become <mark> tags at the very end.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Highlight syntax ==text==
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
)

// TextPreprocessor defines the contract for input preprocessing.
type TextPreprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// LinePreprocessor prepares raw text for a letter.
type LinePreprocessor struct {
	// Highlights turns ==text== into placeholders that
	// ConvertMarkPlaceholders later renders as <mark>text</mark>.
	Highlights bool
}

// Preprocess normalizes line endings, drops one trailing newline so a file
// ending in "\n" does not produce an empty last line, and converts highlights
// when enabled.
func (p *LinePreprocessor) Preprocess(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = trimFinalNewline(content)
	if p.Highlights {
		content = convertHighlights(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// trimFinalNewline removes exactly one trailing \n.
func trimFinalNewline(content string) string {
	return strings.TrimSuffix(content, "\n")
}

// convertHighlights transforms ==text== to placeholder markers.
func convertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// Run it on the rendered letter, after every handler.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}
