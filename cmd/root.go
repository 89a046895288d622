// Package cmd implements the mdclean command line using Cobra.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// options holds the flag values of a single invocation.
type options struct {
	html      bool
	format    string
	chunkSize int
	verbose   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mdclean <input_file> [output_file]",
		Short: "mdclean — strip Markdown syntax down to plain text",
		Long: `mdclean reads a Markdown file and removes its syntax (headers, emphasis,
links, images, code, quotes, lists, rules, tables) while keeping the text.

The result goes to output_file when given (written exactly, no trailing
newline) or to standard output followed by a single newline.

Examples:
  mdclean README.md
  mdclean README.md README.txt
  mdclean page.html --html
  mdclean notes.md --format json --chunk-size 256
  mdclean notes.md notes.pdf --format pdf`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.verbose)

			// Input is read first: a missing file wins over flag errors.
			logger.WithField("input", args[0]).Debug("Reading input")
			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			if err := validateFlags(cmd, opts); err != nil {
				return err
			}
			return runClean(opts, text, args, stdout, logger)
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Treat the input as HTML: extract main content and convert it before stripping")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json or pdf")
	cmd.Flags().IntVar(&opts.chunkSize, "chunk-size", 0, "Words per chunk in JSON output (0 disables chunking)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline steps to standard error")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// validateFlags checks flag combinations before any output is produced.
func validateFlags(cmd *cobra.Command, opts *options) error {
	switch opts.format {
	case "text", "json", "pdf":
	default:
		return fmt.Errorf("unknown format %q (want text, json or pdf)", opts.format)
	}

	if cmd.Flags().Changed("chunk-size") {
		if opts.format != "json" {
			return fmt.Errorf("--chunk-size only applies to --format json")
		}
		if opts.chunkSize < 0 {
			return fmt.Errorf("--chunk-size must not be negative (got %d)", opts.chunkSize)
		}
	}
	return nil
}

// Run executes the command line with args and returns the exit code.
// Failures are reported on stderr as a single "Error: ..." line.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, errorLine(err))
		return exitFailure
	}
	return exitOK
}

// Execute runs the root command against the process arguments.
func Execute() {
	if code := Run(os.Args[1:], os.Stdout, os.Stderr); code != exitOK {
		os.Exit(code)
	}
}
