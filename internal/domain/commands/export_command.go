package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// StdoutDestination asks the export command to only return the rendered content.
const StdoutDestination = "-"

// Export is the interface for the export command.
type Export interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ExportOptions) (string, error)
}

// ExportOptions holds runtime options for a single export.
type ExportOptions struct {
	File        string
	Destination string
}

// ExportCommand renders the entries of one sources file to another location.
type ExportCommand struct {
	list List
	save Save
}

// NewExportCommand creates a new ExportCommand.
func NewExportCommand(list List, save Save) *ExportCommand {
	return &ExportCommand{list: list, save: save}
}

// Execute returns the rendered content and writes it to the destination unless
// the destination is StdoutDestination.
func (it *ExportCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ExportOptions,
) (string, error) {
	entries, err := it.list.Execute(ctx, settings)
	if err != nil {
		return "", err
	}

	filePath := resolveFile(settings, entries, opts.File)
	selected := entities.EntriesOf(filePath, entries)
	if len(selected) == 0 {
		return "", fmt.Errorf("%w: no entries in %s", entities.ErrNotFound, filePath)
	}

	content := entities.RenderFile(selected[0], entries)
	if opts.Destination == StdoutDestination {
		return content, nil
	}

	return content, it.save.Execute(ctx, settings, selected[0], entries, SaveOptions{
		Mode: repositories.ModePath,
		Path: opts.Destination,
	})
}
