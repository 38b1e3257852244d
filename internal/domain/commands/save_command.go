package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/aptsources/internal/infrastructure/repositories"
)

// Save is the interface for the save command.
type Save interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		target entities.SourceEntry,
		entries []entities.SourceEntry,
		opts SaveOptions,
	) error
}

// SaveOptions holds runtime options for a single save.
type SaveOptions struct {
	Mode repositories.WriteMode
	Path string // destination for ModePath; other modes write to the target's origin file
}

// SaveCommand regenerates the sources file of a target entry from the entry collection.
type SaveCommand struct {
	writerRegistry *infraRepos.WriterRegistry
	accessChecker  repositories.AccessChecker
}

// NewSaveCommand creates a new SaveCommand.
func NewSaveCommand(
	writerRegistry *infraRepos.WriterRegistry,
	accessChecker repositories.AccessChecker,
) *SaveCommand {
	return &SaveCommand{
		writerRegistry: writerRegistry,
		accessChecker:  accessChecker,
	}
}

// Execute renders every entry sharing the target's origin path and writes the
// result with the writer of the selected mode.
func (it *SaveCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	target entities.SourceEntry,
	entries []entities.SourceEntry,
	opts SaveOptions,
) error {
	content := entities.RenderFile(target, entries)

	destination := target.FilePath
	mode := opts.Mode
	switch mode {
	case repositories.ModePath:
		if opts.Path == "" {
			return errors.New("a destination path is required in path mode")
		}
		destination = opts.Path
	case repositories.ModeAuto:
		mode = repositories.ModeElevated
		if it.accessChecker.Writable(destination) {
			mode = repositories.ModeOverwrite
		}
	case repositories.ModeOverwrite, repositories.ModeElevated:
	}

	writer, err := it.writerRegistry.Get(mode, settings.Escalation)
	if err != nil {
		return err
	}

	logger.Infof("Writing %d entries to %s (%s)", len(entities.EntriesOf(target.FilePath, entries)), destination, mode)
	if writeErr := writer.Write(ctx, destination, content); writeErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrIO, writeErr)
	}
	return nil
}
