//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// StubAddCommand is a stub implementation of commands.Add.
type StubAddCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.SourceEntry
	LastOpts         commands.AddOptions
}

var _ commands.Add = (*StubAddCommand)(nil)

func (s *StubAddCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.AddOptions,
) (entities.SourceEntry, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
