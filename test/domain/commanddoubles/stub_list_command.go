//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Entries          []entities.SourceEntry
	LastSettings     *entities.Settings
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.SourceEntry, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}

	// hand out a copy so callers cannot alter the configured entries
	entries := make([]entities.SourceEntry, len(s.Entries))
	copy(entries, s.Entries)
	return entries, nil
}
