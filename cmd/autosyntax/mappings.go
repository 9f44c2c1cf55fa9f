package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Dump the syntax mapping table",
	Long:  "Display the assembled mapping table in match priority order, user entries first",
	RunE:  runMappings,
}

func init() {
	mappingsCmd.Flags().StringVar(&detectSyntaxDir, "syntaxes", "", "Directory of syntax definitions to discover")
	mappingsCmd.Flags().StringVar(&detectSettingsPath, "settings", "", "Path to a settings JSON document")
}

func runMappings(cmd *cobra.Command, args []string) error {
	plugin, err := buildPlugin(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "#\tSyntax\tPatterns\n")
	fmt.Fprintf(w, "-\t------\t--------\n")

	for i, entry := range plugin.Mappings() {
		for j, p := range entry.Patterns {
			if j == 0 {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, entry.Syntax, p.Source())
			} else {
				fmt.Fprintf(w, "\t\t%s\n", p.Source())
			}
		}
	}
	return nil
}
