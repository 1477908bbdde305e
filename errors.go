package markchain

import "errors"

// Sentinel errors for library operations.
var (
	// Chain precondition errors. These are programming errors: Handle reports
	// them before touching the letter.
	ErrNilLetter     = errors.New("letter cannot be nil")
	ErrNilHandler    = errors.New("handler cannot be nil")
	ErrCyclicChain   = errors.New("handler chain contains a cycle")
	ErrLetterHandled = errors.New("letter was already handled by a chain")

	// Declarative chain errors.
	ErrEmptyChain      = errors.New("chain must have at least one step")
	ErrUnknownStep     = errors.New("unknown step kind")
	ErrUnknownTag      = errors.New("unknown tag")
	ErrInvalidLanguage = errors.New("invalid language tag")

	// Handler failures.
	ErrMarkdownRender = errors.New("markdown rendering failed")
)
