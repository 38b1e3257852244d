package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// Add is the interface for the add command.
type Add interface {
	Execute(ctx context.Context, settings *entities.Settings, opts AddOptions) (entities.SourceEntry, error)
}

// AddOptions holds runtime options for a single add.
type AddOptions struct {
	File   string // origin path or short name; a new file is created when unknown
	Line   string // directive line, optionally commented out with '#'
	Mode   repositories.WriteMode
	DryRun bool
}

// AddCommand appends a new entry to a sources file.
type AddCommand struct {
	list List
	save Save
}

// NewAddCommand creates a new AddCommand.
func NewAddCommand(list List, save Save) *AddCommand {
	return &AddCommand{list: list, save: save}
}

// Execute parses the line, appends it after the file's existing entries and
// rewrites the file. Returns the added entry.
func (it *AddCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts AddOptions,
) (entities.SourceEntry, error) {
	line := strings.TrimSpace(opts.Line)
	enabled := !strings.HasPrefix(line, "#")

	directive, err := entities.ParseDirective(strings.TrimLeft(line, "#"))
	if err != nil {
		return entities.SourceEntry{}, fmt.Errorf("cannot add %q: %w", opts.Line, err)
	}

	entries, err := it.list.Execute(ctx, settings)
	if err != nil {
		return entities.SourceEntry{}, err
	}

	entry := entities.NewSourceEntry(directive, enabled, resolveFile(settings, entries, opts.File))
	entries = append(entries, entry)

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would write %s:\n%s", entry.FilePath, entities.RenderFile(entry, entries))
		return entry, nil
	}

	return entry, it.save.Execute(ctx, settings, entry, entries, SaveOptions{Mode: opts.Mode})
}
