package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autosyntax/autosyntax/pkg/syntaxdef"
)

var extractCmd = &cobra.Command{
	Use:   "extract <syntax-definition>",
	Short: "Extract the first-line-match pattern from one definition file",
	Long:  "Run the first-line-match extractor against a .sublime-syntax or .tmLanguage file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	pattern, ok, err := syntaxdef.FirstLineMatch(string(data))
	if err != nil {
		return fmt.Errorf("extracting from %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "no first-line match declared")
		return nil
	}
	fmt.Fprintln(out, pattern)
	return nil
}
