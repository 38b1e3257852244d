//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// StubExportCommand is a stub implementation of commands.Export.
type StubExportCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Content          string
	LastOpts         commands.ExportOptions
}

var _ commands.Export = (*StubExportCommand)(nil)

func (s *StubExportCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.ExportOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Content, s.ExecuteErr
}
