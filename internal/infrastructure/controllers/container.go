package controllers

import (
	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []interface{}{
		NewListController,
		NewEnableController,
		NewDisableController,
		NewAddController,
		NewExportController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	listController *ListController,
	enableController *EnableController,
	disableController *DisableController,
	addController *AddController,
	exportController *ExportController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listController,
		enableController,
		disableController,
		addController,
		exportController,
	}
}
