package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

const (
	mainListName = "sources.list"
	listDirName  = "sources.list.d"
	listPattern  = "*.list"
)

// SourcesScanner reads the one-line-style sources lists below a root directory:
// <root>/sources.list followed by <root>/sources.list.d/*.list in lexical order.
type SourcesScanner struct {
	root string
}

var _ repositories.SourcesScanner = (*SourcesScanner)(nil)

// NewSourcesScanner creates a scanner rooted at root (usually /etc/apt).
func NewSourcesScanner(root string) repositories.SourcesScanner {
	return &SourcesScanner{root: root}
}

// Scan parses every sources list file found below the root.
func (it *SourcesScanner) Scan(ctx context.Context) ([]entities.SourceFile, error) {
	paths, err := it.listFiles()
	if err != nil {
		return nil, err
	}

	files := make([]entities.SourceFile, 0, len(paths))
	for _, path := range paths {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, readErr)
		}

		file := entities.ParseSourceFile(path, string(content))
		for _, line := range file.Lines {
			if line.Kind == entities.LineInvalid {
				logger.Debugf("Ignoring unrecognized line in %s: %q", path, line.Text)
			}
		}
		files = append(files, file)
	}

	logger.Debugf("Scanned %d sources files in %s", len(files), it.root)
	return files, nil
}

// listFiles returns the paths to scan. A missing main list or drop-in directory is not an error.
func (it *SourcesScanner) listFiles() ([]string, error) {
	var paths []string

	mainList := filepath.Join(it.root, mainListName)
	info, err := os.Stat(mainList)
	switch {
	case err == nil && !info.IsDir():
		paths = append(paths, mainList)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to stat %q: %w", mainList, err)
	}

	// Glob only fails on a malformed pattern and returns sorted matches.
	dropIns, err := filepath.Glob(filepath.Join(it.root, listDirName, listPattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", filepath.Join(it.root, listDirName), err)
	}
	for _, path := range dropIns {
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			paths = append(paths, path)
		}
	}

	return paths, nil
}
