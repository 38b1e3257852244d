package entities

import (
	"fmt"
	"strings"
)

// Render returns the sources list line for the entry, newline included.
func (it SourceEntry) Render() string {
	prefix := it.Kind().Prefix()
	if it.Options != "" {
		return fmt.Sprintf("%s [%s] %s %s %s\n", prefix, it.Options, it.URL, it.Suite, it.Components)
	}
	return fmt.Sprintf("%s %s %s %s\n", prefix, it.URL, it.Suite, it.Components)
}

// EntriesOf keeps the entries whose origin path equals filePath, preserving order.
// Paths are compared verbatim, without cleaning or resolving links.
func EntriesOf(filePath string, entries []SourceEntry) []SourceEntry {
	var result []SourceEntry
	for _, entry := range entries {
		if entry.FilePath == filePath {
			result = append(result, entry)
		}
	}
	return result
}

// RenderFile regenerates the content of the file target originates from, using
// every entry of the collection that shares its origin path.
func RenderFile(target SourceEntry, entries []SourceEntry) string {
	var builder strings.Builder
	for _, entry := range EntriesOf(target.FilePath, entries) {
		builder.WriteString(entry.Render())
	}
	return builder.String()
}
