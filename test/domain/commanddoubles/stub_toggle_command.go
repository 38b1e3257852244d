//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// StubToggleCommand is a stub implementation of commands.Toggle.
type StubToggleCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.SourceEntry
	LastOpts         commands.ToggleOptions
}

var _ commands.Toggle = (*StubToggleCommand)(nil)

func (s *StubToggleCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.ToggleOptions,
) (entities.SourceEntry, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
