package entities

import (
	"path/filepath"
	"strings"
)

const listExtension = ".list"

// SourceEntry is a single repository line of a sources list, either active or commented out.
// FilePath and FileName only group entries by origin; they never affect the rendered line.
type SourceEntry struct {
	Enabled    bool
	IsSource   bool
	Components string // space-joined, no surrounding whitespace
	FilePath   string
	FileName   string
	Options    string // empty means no bracketed clause
	Suite      string
	URL        string
}

// NewSourceEntry copies a decoded directive into an entry tagged with its origin file.
func NewSourceEntry(directive *Directive, enabled bool, filePath string) SourceEntry {
	return SourceEntry{
		Enabled:    enabled,
		IsSource:   directive.Source,
		Components: strings.TrimSpace(strings.Join(directive.Components, " ")),
		FilePath:   filePath,
		FileName:   OriginName(filePath),
		Options:    directive.Options,
		Suite:      directive.Suite,
		URL:        directive.URL,
	}
}

// Kind returns the directive kind of the entry.
func (it SourceEntry) Kind() EntryKind {
	return KindOf(it.Enabled, it.IsSource)
}

// WithEnabled returns a copy of the entry with the enabled flag replaced.
func (it SourceEntry) WithEnabled(enabled bool) SourceEntry {
	it.Enabled = enabled
	return it
}

// SameContent reports whether both entries render to the same line.
func (it SourceEntry) SameContent(other SourceEntry) bool {
	return it.Enabled == other.Enabled &&
		it.IsSource == other.IsSource &&
		it.Components == other.Components &&
		it.Options == other.Options &&
		it.Suite == other.Suite &&
		it.URL == other.URL
}

// OriginName derives the short identifier of a sources file, e.g. "docker" for
// "/etc/apt/sources.list.d/docker.list" and "sources" for "/etc/apt/sources.list".
func OriginName(filePath string) string {
	return strings.TrimSuffix(filepath.Base(filePath), listExtension)
}
