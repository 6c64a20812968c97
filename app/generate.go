package app

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/randstr-cli/randstr/internal/charset"
	"github.com/randstr-cli/randstr/internal/entropy"
	"github.com/randstr-cli/randstr/internal/logger"
	"github.com/randstr-cli/randstr/internal/randstr"
)

func init() { //nolint: gochecknoinits
	rootCmd.Flags().BoolVar(&uniform, "uniform", false, "Remove modulo bias via rejection sampling")

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var (
	uniform bool
	verbose bool
)

func runGenerate(cmd *cobra.Command, args []string) error {
	logLevel := "warn"
	if verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logger.Log{
		LogLevel: logLevel,
		AppName:  "randstr",
		Console:  logger.Console{Enabled: true, UseConsoleWriter: true},
	}); err != nil {
		return err
	}

	if len(args) < 1 || len(args) > 2 {
		return usageError(cmd, errors.Errorf("accepts between 1 and 2 args, received %d", len(args)))
	}

	length, err := parseLength(args[0])
	if err != nil {
		return usageError(cmd, err)
	}

	mode := "full"
	if len(args) > 1 {
		mode = args[1]
	}

	cs, err := charset.ByName(mode)
	if err != nil {
		return usageError(cmd, err)
	}

	log.Debug().
		Int("length", length).
		Str("mode", cs.Name()).
		Bool("uniform", uniform).
		Msg("generating random string")

	generate := randstr.Generate
	if uniform {
		generate = randstr.GenerateUniform
	}

	s, err := generate(length, cs)
	if err != nil {
		return err
	}

	// The generated string is the only content on stdout so it pipes cleanly.
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
		return errors.Wrap(err, "failed to write generated string")
	}

	report := entropy.Analyze(s, cs)
	if _, err := report.WriteTo(cmd.ErrOrStderr()); err != nil {
		return errors.Wrap(err, "failed to write entropy report")
	}

	return nil
}

// usageError writes the usage reminder to the error stream and passes the
// input error through. Generation failures do not come through here, they
// are not user input mistakes.
func usageError(cmd *cobra.Command, err error) error {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())

	return err
}

// parseLength validates the length argument against the allocation ceiling.
func parseLength(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > randstr.MaxLength {
		return 0, errors.Errorf(
			"invalid length %q: must be a positive integer (max %d)", arg, randstr.MaxLength,
		)
	}

	return n, nil
}
