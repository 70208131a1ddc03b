// Package cli implements the cargo-toolchain command line: flag handling,
// usage text, and mapping resolver results to output and exit codes.
package cli

import (
	"context"
	"errors"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/lamchakchan/cargo-toolchain/internal/logger"
	"github.com/lamchakchan/cargo-toolchain/internal/platform"
)

// compatArg is re-passed as the first argument when cargo dispatches
// `cargo toolchain` to the cargo-toolchain binary.
const compatArg = "toolchain"

// accepted lists every token the command line takes, matched verbatim.
// Combined shorthands, flag values and "--" are rejected.
var accepted = map[string]bool{
	"-d":          true,
	"--directory": true,
	"-h":          true,
	"--help":      true,
	compatArg:     true,
}

// Resolver picks the toolchain to print.
type Resolver interface {
	Resolve(ctx context.Context, directory bool) (string, error)
}

type options struct {
	directory bool
	help      bool
}

// Run parses args, resolves the toolchain with r and writes the result to
// stdout. Usage and diagnostics go to stderr. It returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, r Resolver) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	err := checkArgs(args)
	opts := &options{}
	if err == nil {
		cmd := newRootCmd(opts, r)
		cmd.SetArgs(args)
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		err = cmd.ExecuteContext(ctx)
	}

	var argErr *ArgumentError
	switch {
	case err == nil && opts.help:
		printUsage(stderr)
		return 0
	case err == nil:
		return 0
	case errors.As(err, &argErr):
		logger.L().Debug("cli.argument_error", "arg", argErr.Arg, "err", argErr.Error())
		lipgloss.Fprintf(stderr, "\n%s\n", argErr.Error())
		printUsage(stderr)
		return 1
	default:
		lipgloss.Fprintf(stderr, "%s %v\n", platform.Error("error:"), err)
		return 1
	}
}

func newRootCmd(opts *options, r Resolver) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cargo-toolchain",
		Short:         "Prints the currently active rustup toolchain",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			logger.L().Debug("cli.resolve", "directory", opts.directory)
			name, err := r.Resolve(c.Context(), opts.directory)
			if err != nil {
				return err
			}
			_, err = io.WriteString(c.OutOrStdout(), name+"\n")
			return err
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().BoolVarP(&opts.directory, "directory", "d", false,
		"print the default toolchain for the directory rather than the currently active one")
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		opts.help = true
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ArgumentError{Err: err}
	})
	return cmd
}

// checkArgs rejects the first token that is not exactly one of accepted,
// in argument order.
func checkArgs(args []string) error {
	for _, a := range args {
		if !accepted[a] {
			return &ArgumentError{Arg: a}
		}
	}
	return nil
}
