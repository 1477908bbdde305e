// Package pipeline holds the text stages that surround a handler chain:
//   - Input preprocessing (line ending normalization, trailing newline,
//     ==highlight== placeholders)
//   - Markdown to HTML fragment conversion via Goldmark
//   - Output postprocessing (placeholder to <mark> conversion)
//
// The chain itself lives in the root markchain package. This package only
// deals with strings, so the chain never sees CRLF input or raw
// highlight syntax.
package pipeline
