package markchain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Handler is one link of a chain.
//
// Handle runs PreHandle, then the whole successor chain, then PostHandle.
// Pre-steps therefore run outer to inner and post-steps inner to outer, the
// same order as code before and after a recursive call. Handlers that change
// content work in PreHandle; handlers that wrap content work in PostHandle.
//
// Handlers are compared by identity when the chain is validated, so
// implementations must be pointer types.
type Handler interface {
	PreHandle(l *Letter)
	PostHandle(l *Letter)
	Successor() Handler
}

// validator is implemented by handlers whose configuration can be invalid.
type validator interface {
	Validate() error
}

// failer is implemented by handlers whose step can fail. Steps have no error
// return, so the failure is collected after the chain completes.
type failer interface {
	Err() error
}

// namer is implemented by handlers that describe themselves for logs.
type namer interface {
	Name() string
}

// Base holds the successor and provides no-op steps.
// Embed it and override the step the handler needs.
type Base struct {
	next Handler
}

// Successor returns the next handler, or nil for the terminal link.
func (b *Base) Successor() Handler { return b.next }

// SetSuccessor replaces the next handler.
func (b *Base) SetSuccessor(next Handler) { b.next = next }

// PreHandle does nothing.
func (*Base) PreHandle(*Letter) {}

// PostHandle does nothing.
func (*Base) PostHandle(*Letter) {}

// Handle runs the chain starting at h over l.
//
// Before any step runs, the chain is checked for nil links, cycles, and
// invalid handler configuration, and l is checked for a previous run. The
// handlers are not idempotent (indents stack, markers repeat, tags re-wrap),
// so a letter can only be handled once; build a new Letter to run again.
// Reusing the chain itself on a new letter is fine.
func Handle(h Handler, l *Letter) error {
	if l == nil {
		return ErrNilLetter
	}
	if l.handled {
		return ErrLetterHandled
	}
	if err := validateChain(h); err != nil {
		return err
	}

	handle(h, l)
	l.handled = true

	return collectErrors(h)
}

func handle(h Handler, l *Letter) {
	h.PreHandle(l)
	if next := h.Successor(); next != nil {
		handle(next, l)
	}
	h.PostHandle(l)
}

// validateChain walks the chain once, rejecting nil links and cycles, and
// asks every validator to check itself.
func validateChain(h Handler) error {
	if isNil(h) {
		return ErrNilHandler
	}

	seen := make(map[Handler]struct{})
	for pos := 0; h != nil; pos, h = pos+1, h.Successor() {
		if isNil(h) {
			return fmt.Errorf("%w: position %d", ErrNilHandler, pos)
		}
		if _, ok := seen[h]; ok {
			return fmt.Errorf("%w: %s revisited at position %d", ErrCyclicChain, nameOf(h), pos)
		}
		seen[h] = struct{}{}

		if v, ok := h.(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("position %d: %w", pos, err)
			}
		}
	}
	return nil
}

func collectErrors(h Handler) error {
	var errs []error
	for ; h != nil; h = h.Successor() {
		if f, ok := h.(failer); ok {
			if err := f.Err(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// isNil catches both a nil interface and an interface holding a nil pointer.
func isNil(h Handler) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Len returns the number of handlers in the chain starting at h.
// The chain must be acyclic.
func Len(h Handler) int {
	n := 0
	for ; h != nil; h = h.Successor() {
		n++
	}
	return n
}

// Describe returns one name per handler in chain order, e.g.
// ["upper", "break", "tag(html)", "indent", "tag(body)", "indent"].
// The chain must be acyclic.
func Describe(h Handler) []string {
	var names []string
	for ; h != nil; h = h.Successor() {
		names = append(names, nameOf(h))
	}
	return names
}

func nameOf(h Handler) string {
	if n, ok := h.(namer); ok {
		return n.Name()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", h), "*")
}
