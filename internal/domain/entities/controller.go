package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra command metadata of a controller.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
}

// Controller is a CLI entry point bound to a Cobra command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}

// FlagBinder is implemented by controllers that register their own flags.
type FlagBinder interface {
	AddFlags(cmd *cobra.Command)
}
