package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// EnableController handles the "enable" subcommand.
type EnableController struct {
	command commands.Toggle
}

// NewEnableController creates a new EnableController.
func NewEnableController(command commands.Toggle) *EnableController {
	return &EnableController{command: command}
}

// GetBind returns the Cobra command metadata for the enable controller.
func (it *EnableController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "enable <file> <index>",
		Short: "Enable a commented-out entry",
		Long: `Uncomment the entry at <index> (as numbered by "list") in <file>
and rewrite the file. <file> is a path or a short name such as "docker".`,
		Args: cobra.ExactArgs(2), //nolint:mnd // file + index
	}
}

// Execute enables the selected entry.
func (it *EnableController) Execute(cmd *cobra.Command, args []string) error {
	return executeToggle(cmd, args, it.command, true)
}

// AddFlags adds the enable-specific flags to the given Cobra command.
func (it *EnableController) AddFlags(cmd *cobra.Command) {
	addModeFlag(cmd)
}

// DisableController handles the "disable" subcommand.
type DisableController struct {
	command commands.Toggle
}

// NewDisableController creates a new DisableController.
func NewDisableController(command commands.Toggle) *DisableController {
	return &DisableController{command: command}
}

// GetBind returns the Cobra command metadata for the disable controller.
func (it *DisableController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "disable <file> <index>",
		Short: "Disable an entry by commenting it out",
		Long: `Comment out the entry at <index> (as numbered by "list") in <file>
and rewrite the file. <file> is a path or a short name such as "docker".`,
		Args: cobra.ExactArgs(2), //nolint:mnd // file + index
	}
}

// Execute disables the selected entry.
func (it *DisableController) Execute(cmd *cobra.Command, args []string) error {
	return executeToggle(cmd, args, it.command, false)
}

// AddFlags adds the disable-specific flags to the given Cobra command.
func (it *DisableController) AddFlags(cmd *cobra.Command) {
	addModeFlag(cmd)
}

func executeToggle(cmd *cobra.Command, args []string, command commands.Toggle, enabled bool) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	mode, err := writeMode(cmd, settings)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	entry, err := command.Execute(context.Background(), settings, commands.ToggleOptions{
		File:    args[0],
		Index:   index,
		Enabled: enabled,
		Mode:    mode,
		DryRun:  dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", args[0], err)
	}

	logger.Infof("Updated %s: %s", entry.FilePath, entry.Render())
	return nil
}
