// Package result implements the success/failure value that every grammar
// rule of the JSONPath parser produces, together with the combinators the
// rules compose through.
//
// A Result[T] holds either a parsed value of type T or a positional
// diagnostic (message, zero-based index, full original input). The two
// variants are mutually exclusive by construction: values can only be built
// through Success, Failure and FailureOf, and the discriminant is not
// settable from outside the package.
//
// Failures are ordinary control flow here, not exceptional conditions. The
// diagnostic is a plain value, no stack trace is captured, and nothing
// satisfies the error interface until Get is called at the outermost parse
// boundary.
package result

import "fmt"

// ParseError is the diagnostic carried by a failed Result. It records what
// went wrong, the zero-based offset into the input at which parsing
// stopped, and the complete original input, so the failure is
// self-describing without external context.
//
// Index is always within [0, len(Input)]; it may equal len(Input) for
// "unexpected end of input".
type ParseError struct {
	Message string
	Index   int
	Input   string
}

// Error implements the error interface, rendering the canonical
// human-readable form.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse due to '%s' at index %d in '%s'", e.Message, e.Index, e.Input)
}

// Result is the outcome of one grammar rule: a value of type T, or a
// ParseError describing where and why the rule did not match.
//
// The zero value is a success holding T's zero value; grammar code should
// always construct results explicitly. Result is comparable whenever T is:
// two successes are equal iff their payloads are, two failures are equal
// iff message, index and input all are.
type Result[T any] struct {
	value T
	fail  ParseError
	ok    bool
}

// Success wraps a value in the success variant. This is also the algebra's
// unit: rules that always succeed lift their value with Success.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure constructs the failure variant from a diagnostic triple.
func Failure[T any](message string, index int, input string) Result[T] {
	return Result[T]{fail: ParseError{Message: message, Index: index, Input: input}}
}

// FailureOf re-tags an existing diagnostic as a failure of another value
// type. A failure carries no payload, so crossing type parameters never
// fabricates a value; the diagnostic is preserved verbatim.
func FailureOf[T any](err ParseError) Result[T] {
	return Result[T]{fail: err}
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether r holds a diagnostic.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Get returns the contained value, or the stored diagnostic as a
// *ParseError. This is the single unwrap boundary: call it once at the
// outermost parse entry point, never inside combinator chains.
func (r Result[T]) Get() (T, error) {
	if !r.ok {
		var zero T
		e := r.fail
		return zero, &e
	}
	return r.value, nil
}

// MustGet is like Get but panics with the *ParseError on failure. It
// simplifies safe initialization of globals from known-good inputs.
func (r Result[T]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// GetOrElse returns the contained value, or the result of orElse on
// failure. orElse is evaluated at most once, and never on the success
// path.
func (r Result[T]) GetOrElse(orElse func() T) T {
	if !r.ok {
		return orElse()
	}
	return r.value
}

// FilterOrElse separates syntactic success from semantic validity: on a
// success whose value satisfies pred, r is returned unchanged; on a
// success that fails pred, the orElse result is returned instead (it may
// itself be a success or a failure). On failure r is returned unchanged
// and pred is never evaluated.
func (r Result[T]) FilterOrElse(pred func(T) bool, orElse func() Result[T]) Result[T] {
	if !r.ok || pred(r.value) {
		return r
	}
	return orElse()
}

// Fold eliminates a result totally: onSuccess for the success variant,
// onFailure (with the stored diagnostic) for the failure variant. Exactly
// one branch runs.
func Fold[T, R any](r Result[T], onFailure func(ParseError) R, onSuccess func(T) R) R {
	if !r.ok {
		return onFailure(r.fail)
	}
	return onSuccess(r.value)
}
