//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/aptsources/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultURL        = "http://archive.ubuntu.com/ubuntu"
	defaultSuite      = "jammy"
	defaultComponents = "main restricted"
	defaultFilePath   = "/etc/apt/sources.list"
)

// SourceEntryBuilder helps create test sources entries with a fluent interface.
type SourceEntryBuilder struct {
	*testkit.BaseBuilder
	enabled    bool
	isSource   bool
	components string
	filePath   string
	options    string
	suite      string
	url        string
}

// NewSourceEntryBuilder creates a new entry builder with sensible defaults:
// an enabled binary entry of the main sources.list.
func NewSourceEntryBuilder() *SourceEntryBuilder {
	return &SourceEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		enabled:     true,
		components:  defaultComponents,
		filePath:    defaultFilePath,
		suite:       defaultSuite,
		url:         defaultURL,
	}
}

// WithEnabled sets the enabled flag.
func (b *SourceEntryBuilder) WithEnabled(enabled bool) *SourceEntryBuilder {
	b.enabled = enabled
	return b
}

// WithSource marks the entry as a deb-src entry.
func (b *SourceEntryBuilder) WithSource(isSource bool) *SourceEntryBuilder {
	b.isSource = isSource
	return b
}

// WithComponents sets the space-joined components.
func (b *SourceEntryBuilder) WithComponents(components string) *SourceEntryBuilder {
	b.components = components
	return b
}

// WithFilePath sets the origin file path.
func (b *SourceEntryBuilder) WithFilePath(path string) *SourceEntryBuilder {
	b.filePath = path
	return b
}

// WithOptions sets the bracketed options.
func (b *SourceEntryBuilder) WithOptions(options string) *SourceEntryBuilder {
	b.options = options
	return b
}

// WithSuite sets the suite.
func (b *SourceEntryBuilder) WithSuite(suite string) *SourceEntryBuilder {
	b.suite = suite
	return b
}

// WithURL sets the repository URL.
func (b *SourceEntryBuilder) WithURL(url string) *SourceEntryBuilder {
	b.url = url
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *SourceEntryBuilder) Build() interface{} {
	return b.BuildSourceEntry()
}

// BuildSourceEntry creates the entry with a concrete return type.
func (b *SourceEntryBuilder) BuildSourceEntry() entities.SourceEntry {
	return entities.SourceEntry{
		Enabled:    b.enabled,
		IsSource:   b.isSource,
		Components: b.components,
		FilePath:   b.filePath,
		FileName:   entities.OriginName(b.filePath),
		Options:    b.options,
		Suite:      b.suite,
		URL:        b.url,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SourceEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.enabled = true
	b.isSource = false
	b.components = defaultComponents
	b.filePath = defaultFilePath
	b.options = ""
	b.suite = defaultSuite
	b.url = defaultURL
	return b
}

// Clone creates a deep copy of the SourceEntryBuilder.
func (b *SourceEntryBuilder) Clone() testkit.Builder {
	return &SourceEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		enabled:     b.enabled,
		isSource:    b.isSource,
		components:  b.components,
		filePath:    b.filePath,
		options:     b.options,
		suite:       b.suite,
		url:         b.url,
	}
}
