package commands

import (
	"fmt"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// resolveFile maps a file reference (path or short name) to the origin path used
// by the entries, falling back to the path the settings derive for it.
func resolveFile(settings *entities.Settings, entries []entities.SourceEntry, file string) string {
	for _, entry := range entries {
		if entry.FilePath == file || entry.FileName == file {
			return entry.FilePath
		}
	}
	return settings.ListPath(file)
}

// replaceEntry returns a copy of entries where the index-th entry of filePath is
// replaced by the result of edit.
func replaceEntry(
	entries []entities.SourceEntry,
	filePath string,
	index int,
	edit func(entities.SourceEntry) entities.SourceEntry,
) ([]entities.SourceEntry, entities.SourceEntry, error) {
	result := make([]entities.SourceEntry, len(entries))
	copy(result, entries)

	position := 0
	for i, entry := range result {
		if entry.FilePath != filePath {
			continue
		}
		if position == index {
			result[i] = edit(entry)
			return result, result[i], nil
		}
		position++
	}

	return nil, entities.SourceEntry{}, fmt.Errorf(
		"%w: entry %d of %s (file has %d entries)", entities.ErrNotFound, index, filePath, position,
	)
}
