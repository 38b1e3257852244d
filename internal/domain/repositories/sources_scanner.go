package repositories

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// SourcesScanner enumerates the sources list files of a system and yields them
// parsed, one SourceFile per file, in a stable order.
type SourcesScanner interface {
	Scan(ctx context.Context) ([]entities.SourceFile, error)
}

// SourcesScannerFactory builds a scanner rooted at the given sources directory.
type SourcesScannerFactory func(root string) SourcesScanner
