package controllers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List the entries of every sources list",
		Long: `Scan sources.list and sources.list.d/*.list and print every entry,
including entries disabled by commenting them out.

Entries are numbered per file; use that number with enable and disable.`,
		Args: cobra.NoArgs,
	}
}

// Execute prints the entries grouped by file.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	fileFilter, _ := cmd.Flags().GetString("file")
	noColor, _ := cmd.Flags().GetBool("no-color")
	out := cmd.OutOrStdout()
	initColor(out, noColor)

	entries, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		return err
	}

	if fileFilter != "" {
		entries = filterByFile(entries, fileFilter)
	}

	printEntries(out, entries)
	return nil
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "Only list entries of this file (path or short name)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

func printEntries(out io.Writer, entries []entities.SourceEntry) {
	currentFile := ""
	index := 0
	for _, entry := range entries {
		if entry.FilePath != currentFile {
			if currentFile != "" {
				_, _ = fmt.Fprintln(out)
			}
			currentFile = entry.FilePath
			index = 0
			_, _ = fmt.Fprintf(out, "%s %s\n", color.CyanString(entry.FilePath), color.HiBlackString("(%s)", entry.FileName))
		}

		status := color.GreenString("%-9s", "enabled")
		if !entry.Enabled {
			status = color.YellowString("%-9s", "disabled")
		}
		_, _ = fmt.Fprintf(out, "  [%d] %s %s", index, status, entry.Render())
		index++
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No entries found.")
	}
}

// filterByFile keeps the entries whose origin path or short name matches file.
func filterByFile(entries []entities.SourceEntry, file string) []entities.SourceEntry {
	var result []entities.SourceEntry
	for _, entry := range entries {
		if entry.FilePath == file || entry.FileName == file {
			result = append(result, entry)
		}
	}
	return result
}

// initColor disables colors on request or when out is not a terminal.
func initColor(out io.Writer, noColor bool) {
	file, ok := out.(*os.File)
	if noColor || !ok {
		color.NoColor = true
		return
	}
	if info, err := file.Stat(); err != nil || info.Mode()&os.ModeCharDevice == 0 {
		color.NoColor = true
	}
}
