package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// OverwriteWriter replaces a sources file in place: the existing file is removed,
// then a new one is created and written. The sequence is not atomic.
type OverwriteWriter struct{}

var _ repositories.SourcesWriter = (*OverwriteWriter)(nil)

// NewOverwriteWriter creates an OverwriteWriter.
func NewOverwriteWriter() *OverwriteWriter {
	return &OverwriteWriter{}
}

// Write removes path if it exists and writes content to a fresh file.
func (it *OverwriteWriter) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := os.Lstat(path); err == nil {
		if removeErr := os.Remove(path); removeErr != nil {
			return fmt.Errorf("failed to remove %q: %w", path, removeErr)
		}
		logger.Debugf("Removed %s before rewriting it", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	return createAndWrite(path, content)
}

// createAndWrite creates or truncates path and writes content into it.
func createAndWrite(path, content string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}

	if _, writeErr := file.WriteString(content); writeErr != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	if closeErr := file.Close(); closeErr != nil {
		return fmt.Errorf("failed to close %q: %w", path, closeErr)
	}
	return nil
}
