package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	envFiles []string
	logLevel string
	verbose  bool

	cfg appConfig
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "formkit",
		Short: "Constraint validation for HTML form controls",
		Long: `formkit computes the validity state of HTML form controls: the ten
ValidityState flags (valueMissing, typeMismatch, patternMismatch, tooLong,
tooShort, rangeUnderflow, rangeOverflow, stepMismatch, badInput, customError)
and the derived valid flag.

It reads HTML documents or YAML/JSON control snapshots, prints reports, and
can serve the same checks over HTTP.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.envFiles)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "load environment variables from these files (repeatable)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides FORMKIT_LOG_LEVEL)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "shorthand for --log-level=debug")

	root.AddCommand(newCheckCmd(a), newServeCmd(a), newVersionCmd())
	return root
}

// logger builds the logger for a subcommand. fallbackLevel is used when no
// flag or environment variable picked one.
func (a *app) logger(fallbackLevel string) (*slog.Logger, error) {
	level := a.logLevel
	if a.verbose {
		level = "debug"
	}
	return newLogger(a.cfg, a.stderr, level, fallbackLevel)
}
