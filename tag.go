package markchain

import (
	"fmt"
	"slices"
	"strings"
)

// Tag identifies an element a TagWrapper can emit.
type Tag string

// Supported tags.
const (
	TagHTML   Tag = "html"
	TagHeader Tag = "header"
	TagH1     Tag = "h1"
	TagH2     Tag = "h2"
	TagH3     Tag = "h3"
	TagBody   Tag = "body"
	TagP      Tag = "p"
	TagA      Tag = "a"
)

var knownTags = []Tag{TagHTML, TagHeader, TagH1, TagH2, TagH3, TagBody, TagP, TagA}

// Tags returns every supported tag in declaration order.
func Tags() []Tag {
	return slices.Clone(knownTags)
}

// ParseTag returns the Tag named s. Matching ignores case and surrounding
// whitespace.
func ParseTag(s string) (Tag, error) {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, s)
	}
	return t, nil
}

// Valid reports whether t is one of the supported tags.
func (t Tag) Valid() bool {
	return slices.Contains(knownTags, t)
}

// Open returns the opening markup, e.g. "<html>".
func (t Tag) Open() string {
	return "<" + string(t) + ">"
}

// Close returns the closing markup, e.g. "</html>".
func (t Tag) Close() string {
	return "</" + string(t) + ">"
}

func (t Tag) String() string {
	return string(t)
}
