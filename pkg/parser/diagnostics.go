package parser

import (
	"fmt"
	"strings"

	"github.com/querylabs/gojsonpath/pkg/result"
)

// UnexpectedToken constructs the canonical syntax-error failure for a
// token mismatch: the message names the acceptable alternatives in the
// order supplied alongside the token actually observed, and the failure
// carries the observed token's offset and the full input. All token
// mismatches in the grammar report through this single format.
func UnexpectedToken[T any](input string, observed Token, expected ...TokenType) result.Result[T] {
	names := make([]string, len(expected))
	for i, tt := range expected {
		names[i] = tt.String()
	}
	message := fmt.Sprintf("expected %s but found %s", strings.Join(names, " or "), observed)
	return result.Failure[T](message, observed.Position, input)
}
