package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/autosyntax/autosyntax"
	"github.com/autosyntax/autosyntax/pkg/host"
	"github.com/autosyntax/autosyntax/pkg/types"
)

var (
	detectSyntaxDir    string
	detectSettingsPath string
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Detect a file's syntax from its first line",
	Long:  "Build the mapping table and report which syntax the file's first line selects",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectSyntaxDir, "syntaxes", "", "Directory of syntax definitions to discover")
	detectCmd.Flags().StringVar(&detectSettingsPath, "settings", "", "Path to a settings JSON document")
}

func runDetect(cmd *cobra.Command, args []string) error {
	plugin, err := buildPlugin(cmd)
	if err != nil {
		return err
	}

	firstLine, err := readFirstLine(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	// Event gating is the host's concern; the harness matches directly.
	syntax, ok := plugin.Detect(firstLine)
	if !ok {
		fmt.Fprintln(out, "no syntax matched")
		return nil
	}
	fmt.Fprintf(out, "%s %s\n", color.New(color.Bold).Sprint("matched:"),
		color.New(color.FgHiGreen).Sprint(syntax))
	return nil
}

// buildPlugin assembles a Plugin from the --syntaxes and --settings flags.
func buildPlugin(cmd *cobra.Command) (*autosyntax.Plugin, error) {
	log := harnessLogger(cmd)

	var fsys fs.FS = emptyFS{}
	if detectSyntaxDir != "" {
		if _, err := os.Stat(detectSyntaxDir); err != nil {
			return nil, fmt.Errorf("syntax directory does not exist: %s", detectSyntaxDir)
		}
		fsys = os.DirFS(detectSyntaxDir)
	}

	settings, err := loadSettings(detectSettingsPath)
	if err != nil {
		return nil, err
	}

	return autosyntax.New(host.NewDirIndex(fsys),
		autosyntax.WithLogger(log),
		autosyntax.WithSettings(settings),
		autosyntax.WithAlerter(host.AlerterFunc(func(msg string) {
			log.Error(msg)
		})),
	), nil
}

func loadSettings(path string) (types.Settings, error) {
	settings := types.DefaultSettings()
	if path == "" {
		return settings, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return settings, nil
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}

// emptyFS is the resource index used when no --syntaxes directory is given:
// only user-configured mappings apply.
type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
