// Package cli implements the pdf-util command line using cobra.
package cli

import (
	"fmt"
	"strings"

	"pdf_util/config"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	quiet   bool
}

// logLevel returns the level selected by --verbose/--quiet, or fallback.
func (o *rootOptions) logLevel(fallback string) string {
	switch {
	case o.quiet:
		return "warn"
	case o.verbose:
		return "debug"
	}
	return fallback
}

func (o *rootOptions) logger(cmd *cobra.Command) *logrus.Logger {
	return config.NewLogger(cmd.ErrOrStderr(), o.logLevel(config.DefaultLogLevel))
}

// NewRootCmd builds the complete command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pdf-util",
		Short: "PDF Utility CLI Tool",
		Long: `pdf-util merges PDF files, rotates pages and keeps a subset of pages.

Pages are selected with specifications such as "1", "1-3" or "1-3,7,10-12".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log warnings and errors")

	cmd.AddCommand(
		newMergeCmd(opts),
		newRotateCmd(opts),
		newKeepCmd(opts),
		newServeCmd(opts),
	)
	return cmd
}

// Execute runs the command line with args and returns the process exit code.
func Execute(args []string) int {
	return run(NewRootCmd(), args)
}

func run(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Error:"), oneLine(err))
		return 1
	}
	return 0
}

// oneLine flattens multi-line library errors into a single diagnostic line.
func oneLine(err error) string {
	lines := strings.Split(strings.TrimSpace(err.Error()), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "; ")
}

func success(cmd *cobra.Command, format string, a ...any) {
	color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✓ "+format+"\n", a...)
}
