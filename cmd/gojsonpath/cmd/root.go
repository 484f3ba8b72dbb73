// Package cmd implements the gojsonpath command tree.
package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/querylabs/gojsonpath/pkg/parser"
	"github.com/querylabs/gojsonpath/pkg/result"
)

var strictRoot bool

var rootCmd = &cobra.Command{
	Use:   "gojsonpath",
	Short: "Parse and evaluate JSONPath queries",
	Long: `gojsonpath parses JSONPath queries with exact-position diagnostics
and evaluates them against JSON documents.

Commands:
  parse    - parse a query and print its canonical form
  select   - evaluate a query against a JSON document`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strictRoot, "strict-root", false, "require the leading $ root identifier")
}

func parserOptions() []parser.Option {
	if strictRoot {
		return []parser.Option{parser.WithStrictRoot()}
	}
	return nil
}

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// renderDiagnostic prints the canonical failure line plus the query with a
// caret under the failure offset.
func renderDiagnostic(w io.Writer, perr *result.ParseError) {
	fmt.Fprintln(w, errorStyle.Render(perr.Error()))
	fmt.Fprintln(w, sourceStyle.Render("  "+perr.Input))

	// The diagnostic index is a byte offset; the caret column counts runes.
	column := utf8.RuneCountInString(perr.Input[:perr.Index])
	fmt.Fprintln(w, caretStyle.Render("  "+strings.Repeat(" ", column)+"^"))
}
