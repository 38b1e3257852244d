package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// Toggle is the interface for the enable and disable commands.
type Toggle interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ToggleOptions) (entities.SourceEntry, error)
}

// ToggleOptions holds runtime options for a single toggle.
type ToggleOptions struct {
	File    string // origin path or short name, e.g. "docker"
	Index   int    // zero-based position among the file's entries
	Enabled bool
	Mode    repositories.WriteMode
	DryRun  bool
}

// ToggleCommand comments out or restores a single entry and rewrites its file.
type ToggleCommand struct {
	list List
	save Save
}

// NewToggleCommand creates a new ToggleCommand.
func NewToggleCommand(list List, save Save) *ToggleCommand {
	return &ToggleCommand{list: list, save: save}
}

// Execute returns the entry as written.
func (it *ToggleCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ToggleOptions,
) (entities.SourceEntry, error) {
	entries, err := it.list.Execute(ctx, settings)
	if err != nil {
		return entities.SourceEntry{}, err
	}

	filePath := resolveFile(settings, entries, opts.File)
	updated, target, err := replaceEntry(entries, filePath, opts.Index, func(entry entities.SourceEntry) entities.SourceEntry {
		return entry.WithEnabled(opts.Enabled)
	})
	if err != nil {
		return entities.SourceEntry{}, err
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would write %s:\n%s", filePath, entities.RenderFile(target, updated))
		return target, nil
	}

	return target, it.save.Execute(ctx, settings, target, updated, SaveOptions{Mode: opts.Mode})
}
