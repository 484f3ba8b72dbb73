package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gojsonpath "github.com/querylabs/gojsonpath"
	"github.com/querylabs/gojsonpath/pkg/result"
)

var selectCmd = &cobra.Command{
	Use:   "select <query> [file]",
	Short: "Evaluate a query against a JSON document",
	Long: `Evaluate a query against a JSON document read from a file or,
when no file is given, from standard input. Matched nodes are printed as
a JSON array in document order.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	matches, err := gojsonpath.SelectBytes(args[0], doc, parserOptions()...)
	if err != nil {
		var perr *result.ParseError
		if errors.As(err, &perr) {
			renderDiagnostic(cmd.ErrOrStderr(), perr)
		}
		return err
	}
	if matches == nil {
		matches = []any{}
	}

	out, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func readDocument(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 2 {
		doc, err := os.ReadFile(args[1])
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		return doc, nil
	}
	doc, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read document from stdin: %w", err)
	}
	return doc, nil
}
