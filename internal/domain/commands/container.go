package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []interface{}{
		NewListCommand,
		NewSaveCommand,
		NewToggleCommand,
		NewAddCommand,
		NewExportCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ListCommand) List {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SaveCommand) Save {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ToggleCommand) Toggle {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *AddCommand) Add {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ExportCommand) Export {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
