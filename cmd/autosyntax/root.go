package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "autosyntax",
	Short: "Debug harness for the autosyntax first-line detection library",
	Long: `autosyntax exercises the syntax mapping table outside an editor host.

It builds the table from a directory of syntax definitions plus an optional
settings file, then runs the same first-line matching the editor plugin
performs. Intended for inspecting why a buffer does or does not get a syntax.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(mappingsCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// harnessLogger returns the diagnostics logger for one command run.
// Warnings and errors always show; debug detail only with --verbose.
func harnessLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("logger", "AutoSetSyntax")
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
