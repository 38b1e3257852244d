package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// AddController handles the "add" subcommand.
type AddController struct {
	command commands.Add
}

// NewAddController creates a new AddController.
func NewAddController(command commands.Add) *AddController {
	return &AddController{command: command}
}

// GetBind returns the Cobra command metadata for the add controller.
func (it *AddController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "add <file> <line>",
		Short: "Append an entry to a sources list",
		Long: `Append <line> to <file> and rewrite the file. The line uses the one-line format,
e.g. "deb [arch=amd64] https://download.docker.com/linux/ubuntu jammy stable";
prefix it with '#' to add it disabled. Unknown files are created.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // file + line
	}
}

// Execute appends the entry.
func (it *AddController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	mode, err := writeMode(cmd, settings)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	entry, err := it.command.Execute(context.Background(), settings, commands.AddOptions{
		File:   args[0],
		Line:   args[1],
		Mode:   mode,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to add entry to %s: %w", args[0], err)
	}

	logger.Infof("Added to %s: %s", entry.FilePath, entry.Render())
	return nil
}

// AddFlags adds the add-specific flags to the given Cobra command.
func (it *AddController) AddFlags(cmd *cobra.Command) {
	addModeFlag(cmd)
}
