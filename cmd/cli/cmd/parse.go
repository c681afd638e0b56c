// Package cmd - parse command
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"paint-quote/core/extraction"
)

// parseCmd sanitizes raw extraction output without calling the oracle
var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Sanitize raw extraction output into quote data",
	Long: `Parse text that a completion model returned for an extraction request.

Code fences and prose around the JSON object are ignored, fields are coerced
to their expected types and the result is scored for completeness.
Use - to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return printJSON(extraction.ParseQuoteInformation(string(data)))
}
