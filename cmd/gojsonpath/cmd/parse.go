package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	gojsonpath "github.com/querylabs/gojsonpath"
	"github.com/querylabs/gojsonpath/pkg/result"
)

var parseCmd = &cobra.Command{
	Use:   "parse <query>",
	Short: "Parse a query and print its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path, err := gojsonpath.Compile(args[0], parserOptions()...)
	if err != nil {
		var perr *result.ParseError
		if errors.As(err, &perr) {
			renderDiagnostic(cmd.ErrOrStderr(), perr)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path.String())
	return nil
}
