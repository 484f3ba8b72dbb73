package result

// Bind sequences two parse steps: on success it feeds the value to f and
// returns f's result; on failure it short-circuits, re-tagging the
// original diagnostic without ever invoking f. Chains of grammar rules are
// built from Bind, so the first failing rule's diagnostic propagates to
// the top unchanged.
func Bind[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if !r.ok {
		return Result[B]{fail: r.fail}
	}
	return f(r.value)
}

// Map transforms a success value, leaving failures untouched.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.ok {
		return Result[B]{fail: r.fail}
	}
	return Success(f(r.value))
}

// Step is one iteration outcome for TailRec: either "continue with the
// next state" or "done with the final value".
type Step[A, B any] struct {
	next A
	done B
	more bool
}

// Continue signals TailRec to run another iteration from state next.
func Continue[A, B any](next A) Step[A, B] {
	return Step[A, B]{next: next, more: true}
}

// Done signals TailRec to stop and succeed with v.
func Done[A, B any](v B) Step[A, B] {
	return Step[A, B]{done: v}
}

// TailRec repeatedly applies step starting from seed until it yields Done
// or a failure. The iteration is an explicit loop: stack usage is O(1) in
// the number of iterations, so productions that consume arbitrarily long
// token runs (a chain of thousands of path segments) cannot overflow the
// stack.
func TailRec[A, B any](seed A, step func(A) Result[Step[A, B]]) Result[B] {
	state := seed
	for {
		r := step(state)
		if !r.ok {
			return Result[B]{fail: r.fail}
		}
		if !r.value.more {
			return Success(r.value.done)
		}
		state = r.value.next
	}
}

// Traverse applies f to each item in order and collects the values into a
// single success, or stops at the first failure and returns it. Items
// after the first failure are never evaluated, so failure reporting for a
// repeated production (a comma-separated selector list) is deterministic.
func Traverse[A, B any](items []A, f func(A) Result[B]) Result[[]B] {
	out := make([]B, 0, len(items))
	for _, item := range items {
		r := f(item)
		if !r.ok {
			return Result[[]B]{fail: r.fail}
		}
		out = append(out, r.value)
	}
	return Success(out)
}

// Collect sequences already-materialized results with the same ordering
// and fail-fast contract as Traverse.
func Collect[B any](results []Result[B]) Result[[]B] {
	out := make([]B, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Result[[]B]{fail: r.fail}
		}
		out = append(out, r.value)
	}
	return Success(out)
}

// FoldLeft reduces over the at most one contained value, treating failure
// as the empty case: zero is returned untouched.
func FoldLeft[T, B any](r Result[T], zero B, f func(B, T) B) B {
	if !r.ok {
		return zero
	}
	return f(zero, r.value)
}

// FoldRight is FoldLeft with the operand order flipped, for symmetry with
// container abstractions folded from the right.
func FoldRight[T, B any](r Result[T], zero B, f func(T, B) B) B {
	if !r.ok {
		return zero
	}
	return f(r.value, zero)
}
