package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// ExportController handles the "export" subcommand.
type ExportController struct {
	command commands.Export
}

// NewExportController creates a new ExportController.
func NewExportController(command commands.Export) *ExportController {
	return &ExportController{command: command}
}

// GetBind returns the Cobra command metadata for the export controller.
func (it *ExportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "export <file> <destination>",
		Short: "Write the entries of a sources list to another path",
		Long: `Render the entries of <file> and write them to <destination>,
creating or truncating it. Use "-" as destination to print to stdout.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // file + destination
	}
}

// Execute exports the file.
func (it *ExportController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	content, err := it.command.Execute(context.Background(), settings, commands.ExportOptions{
		File:        args[0],
		Destination: args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", args[0], err)
	}

	if args[1] == commands.StdoutDestination {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	logger.Infof("Exported %s to %s", args[0], args[1])
	return nil
}
