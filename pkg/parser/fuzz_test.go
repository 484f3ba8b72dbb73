package parser_test

import (
	"testing"

	"github.com/querylabs/gojsonpath/pkg/parser"
)

// FuzzParse checks that arbitrary input never panics the parser and that
// anything accepted renders a canonical form the parser accepts again.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"$",
		"$.store.book[0].title",
		"$..price",
		"$['a','b c',*]",
		"$[1:10:2]",
		"a.b[4",
		"$[::0]",
		`$['é\n']`,
		"$[ 'x' , -3 ]",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		p, err := parser.Parse(input)
		if err != nil {
			return
		}
		canonical := p.String()
		if _, err := parser.Parse(canonical); err != nil {
			t.Fatalf("canonical form %q of %q does not reparse: %v", canonical, input, err)
		}
	})
}
