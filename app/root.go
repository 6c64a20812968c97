// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "randstr <length> [mode]",
	Short: "randstr generates cryptographically secure random strings",
	Long: `randstr generates a cryptographically secure random string of the given
length and reports its Shannon entropy on the standard error stream. The
generated string is the only output on the standard output stream, so it
can be piped cleanly.

Modes:
  full   - all printable ASCII including special chars (default)
  alnum  - alphanumeric only (A-Z, a-z, 0-9)
  num    - numbers only (0-9)`,
	Example: "  randstr 32 full",

	// Argument count is validated in runGenerate so every input mistake gets
	// the same usage reminder on the error stream. Cobra's own usage print
	// follows the out writer and could land on stdout.
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
