package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.SourceEntry, error)
}

// ListCommand scans the sources directory and extracts every active and
// commented-out entry.
type ListCommand struct {
	scannerFactory repositories.SourcesScannerFactory
}

// NewListCommand creates a new ListCommand with the given scanner factory.
func NewListCommand(scannerFactory repositories.SourcesScannerFactory) *ListCommand {
	return &ListCommand{scannerFactory: scannerFactory}
}

// Execute returns the entries of every sources file, in file-then-line order.
func (it *ListCommand) Execute(ctx context.Context, settings *entities.Settings) ([]entities.SourceEntry, error) {
	files, err := it.scannerFactory(settings.SourcesDir).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan %s: %w", entities.ErrIO, settings.SourcesDir, err)
	}

	entries := entities.ExtractEntries(files)
	logger.Debugf("Extracted %d entries from %d files", len(entries), len(files))
	return entries, nil
}
