package result_test

import (
	"errors"
	"testing"

	"github.com/querylabs/gojsonpath/pkg/result"
)

func TestGetSuccess(t *testing.T) {
	t.Parallel()

	v, err := result.Success(7).Get()
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if v != 7 {
		t.Fatalf("Get() = %d, want 7", v)
	}
}

func TestGetFailure(t *testing.T) {
	t.Parallel()

	r := result.Failure[int]("e", 0, "")
	_, err := r.Get()
	if err == nil {
		t.Fatal("Get() on failure returned nil error")
	}

	var perr *result.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Get() error type = %T, want *result.ParseError", err)
	}
	if perr.Message != "e" || perr.Index != 0 || perr.Input != "" {
		t.Fatalf("ParseError = %+v, want {e 0 }", *perr)
	}
}

func TestParseErrorFormat(t *testing.T) {
	t.Parallel()

	err := &result.ParseError{Message: "boom", Index: 4, Input: "a.b[4"}
	want := "Failed to parse due to 'boom' at index 4 in 'a.b[4'"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestMustGetPanicsWithDiagnostic(t *testing.T) {
	t.Parallel()

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("MustGet on failure did not panic")
		}
		perr, ok := rec.(*result.ParseError)
		if !ok {
			t.Fatalf("panic value type = %T, want *result.ParseError", rec)
		}
		if perr.Message != "bad token" || perr.Index != 2 || perr.Input != "$." {
			t.Fatalf("panic diagnostic = %+v", *perr)
		}
	}()

	result.Failure[string]("bad token", 2, "$.").MustGet()
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	if got := result.Success(7).GetOrElse(func() int { return 0 }); got != 7 {
		t.Fatalf("GetOrElse on success = %d, want 7", got)
	}
	if got := result.Failure[int]("e", 0, "").GetOrElse(func() int { return 42 }); got != 42 {
		t.Fatalf("GetOrElse on failure = %d, want 42", got)
	}
}

func TestGetOrElseLazy(t *testing.T) {
	t.Parallel()

	called := 0
	result.Success(1).GetOrElse(func() int {
		called++
		return 0
	})
	if called != 0 {
		t.Fatalf("default evaluated %d times on success, want 0", called)
	}

	result.Failure[int]("e", 0, "").GetOrElse(func() int {
		called++
		return 0
	})
	if called != 1 {
		t.Fatalf("default evaluated %d times on failure, want 1", called)
	}
}

func TestDiscriminant(t *testing.T) {
	t.Parallel()

	s := result.Success("v")
	if !s.IsSuccess() || s.IsFailure() {
		t.Fatalf("Success: IsSuccess=%v IsFailure=%v", s.IsSuccess(), s.IsFailure())
	}

	f := result.Failure[string]("e", 1, "x")
	if f.IsSuccess() || !f.IsFailure() {
		t.Fatalf("Failure: IsSuccess=%v IsFailure=%v", f.IsSuccess(), f.IsFailure())
	}
}

func TestEquality(t *testing.T) {
	t.Parallel()

	if result.Success(5) != result.Success(5) {
		t.Error("equal successes compare unequal")
	}
	if result.Success(5) == result.Success(6) {
		t.Error("distinct successes compare equal")
	}
	if result.Failure[int]("e", 1, "ab") != result.Failure[int]("e", 1, "ab") {
		t.Error("equal failures compare unequal")
	}
	if result.Failure[int]("e", 1, "ab") == result.Failure[int]("e", 2, "ab") {
		t.Error("failures with distinct indexes compare equal")
	}
	if result.Success(0) == result.Failure[int]("e", 0, "") {
		t.Error("success compares equal to failure")
	}
}

func TestFailureOfPreservesDiagnostic(t *testing.T) {
	t.Parallel()

	orig := result.ParseError{Message: "m", Index: 3, Input: "abc"}
	r := result.FailureOf[[]string](orig)

	_, err := r.Get()
	var perr *result.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Get() error type = %T", err)
	}
	if *perr != orig {
		t.Fatalf("re-tagged diagnostic = %+v, want %+v", *perr, orig)
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	got := result.Fold(result.Success(3),
		func(result.ParseError) string { return "failure" },
		func(v int) string { return "ok" })
	if got != "ok" {
		t.Fatalf("Fold on success = %q", got)
	}

	got = result.Fold(result.Failure[int]("e", 2, "xy"),
		func(e result.ParseError) string { return e.Message },
		func(int) string { return "ok" })
	if got != "e" {
		t.Fatalf("Fold on failure = %q", got)
	}
}

func TestFoldRunsExactlyOneBranch(t *testing.T) {
	t.Parallel()

	result.Fold(result.Success(1),
		func(result.ParseError) int {
			t.Fatal("onFailure invoked for a success")
			return 0
		},
		func(v int) int { return v })

	result.Fold(result.Failure[int]("e", 0, ""),
		func(result.ParseError) int { return 0 },
		func(int) int {
			t.Fatal("onSuccess invoked for a failure")
			return 0
		})
}

func TestFilterOrElse(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }

	got := result.Success(5).FilterOrElse(positive, func() result.Result[int] {
		return result.Failure[int]("x", 0, "")
	})
	if got != result.Success(5) {
		t.Fatalf("FilterOrElse kept-success = %+v", got)
	}

	got = result.Success(-5).FilterOrElse(positive, func() result.Result[int] {
		return result.Failure[int]("neg", 3, "-5")
	})
	if got != result.Failure[int]("neg", 3, "-5") {
		t.Fatalf("FilterOrElse rejected-success = %+v", got)
	}
}

func TestFilterOrElseOnFailure(t *testing.T) {
	t.Parallel()

	orig := result.Failure[int]("original", 1, "in")
	got := orig.FilterOrElse(
		func(int) bool {
			t.Fatal("predicate invoked for a failure")
			return false
		},
		func() result.Result[int] {
			t.Fatal("orElse invoked for a failure")
			return result.Success(0)
		})
	if got != orig {
		t.Fatalf("FilterOrElse on failure = %+v, want original", got)
	}
}

func TestFilterOrElseLazyOrElse(t *testing.T) {
	t.Parallel()

	called := 0
	result.Success(1).FilterOrElse(
		func(int) bool { return true },
		func() result.Result[int] {
			called++
			return result.Success(0)
		})
	if called != 0 {
		t.Fatalf("orElse evaluated %d times for a passing value, want 0", called)
	}
}
