package markchain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// StepKind names a handler type in a declarative chain.
type StepKind string

// Step kinds accepted by BuildChain.
const (
	StepUpper     StepKind = "upper"
	StepLower     StepKind = "lower"
	StepBreak     StepKind = "break"
	StepIndent    StepKind = "indent"
	StepTabIndent StepKind = "tab-indent"
	StepTag       StepKind = "tag"
	StepMarkdown  StepKind = "markdown"
)

// StepKinds returns every accepted kind in documentation order.
func StepKinds() []StepKind {
	return []StepKind{StepUpper, StepLower, StepBreak, StepIndent, StepTabIndent, StepTag, StepMarkdown}
}

// Step describes one handler of a chain as data.
// Fields that do not apply to Kind are ignored.
type Step struct {
	Kind     StepKind
	Tag      string // tag: required
	NoIndent bool   // tag: skip the owned Indent successor
	Prefix   string // indent: custom prefix (empty = DefaultIndentPrefix)
	Marker   string // break: custom marker (empty = DefaultBreakMarker)
	Language string // upper, lower: BCP 47 tag (empty = und)
}

// BuildChain builds the chain described by steps. steps[0] becomes the
// outermost handler and each later step its successor, matching nested
// constructor calls written by hand.
func BuildChain(steps ...Step) (Handler, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyChain
	}

	var next Handler
	for i := len(steps) - 1; i >= 0; i-- {
		h, err := buildStep(steps[i], next)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		next = h
	}
	return next, nil
}

func buildStep(s Step, next Handler) (Handler, error) {
	switch StepKind(strings.ToLower(string(s.Kind))) {
	case StepUpper:
		opts, err := caseOptions(s.Language)
		if err != nil {
			return nil, err
		}
		return NewUpper(next, opts...), nil
	case StepLower:
		opts, err := caseOptions(s.Language)
		if err != nil {
			return nil, err
		}
		return NewLower(next, opts...), nil
	case StepBreak:
		h := NewLineBreak(next)
		if s.Marker != "" {
			h.Marker = s.Marker
		}
		return h, nil
	case StepIndent:
		if s.Prefix != "" {
			return NewIndentWith(s.Prefix, next), nil
		}
		return NewIndent(next), nil
	case StepTabIndent:
		return NewTabIndent(next), nil
	case StepTag:
		tag, err := ParseTag(s.Tag)
		if err != nil {
			return nil, err
		}
		return NewTagWrapper(tag, !s.NoIndent, next), nil
	case StepMarkdown:
		return NewMarkdown(next), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, s.Kind)
	}
}

func caseOptions(lang string) ([]CaseOption, error) {
	if lang == "" {
		return nil, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, lang, err)
	}
	return []CaseOption{WithLanguage(tag)}, nil
}
