//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// WriteCall records a single invocation of Write.
type WriteCall struct {
	Path    string
	Content string
}

// SpySourcesWriter implements repositories.SourcesWriter as a configurable spy.
type SpySourcesWriter struct {
	WriteErr   error
	WriteCalls []WriteCall

	// spy: escalation settings the factory was called with
	Settings []entities.EscalationSettings
}

var _ repositories.SourcesWriter = (*SpySourcesWriter)(nil)

func (w *SpySourcesWriter) Write(_ context.Context, path, content string) error {
	w.WriteCalls = append(w.WriteCalls, WriteCall{Path: path, Content: content})
	return w.WriteErr
}

// Factory returns a SourcesWriterFactory that records the settings and yields the spy.
func (w *SpySourcesWriter) Factory() repositories.SourcesWriterFactory {
	return func(settings entities.EscalationSettings) repositories.SourcesWriter {
		w.Settings = append(w.Settings, settings)
		return w
	}
}

// StubAccessChecker implements repositories.AccessChecker with a fixed answer.
type StubAccessChecker struct {
	WritableResult bool
	CheckedPaths   []string
}

var _ repositories.AccessChecker = (*StubAccessChecker)(nil)

func (c *StubAccessChecker) Writable(path string) bool {
	c.CheckedPaths = append(c.CheckedPaths, path)
	return c.WritableResult
}
