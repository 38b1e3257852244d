//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/commands"
	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// SaveCall records a single invocation of Execute.
type SaveCall struct {
	Target  entities.SourceEntry
	Entries []entities.SourceEntry
	Opts    commands.SaveOptions
}

// SpySaveCommand is a spy implementation of commands.Save.
type SpySaveCommand struct {
	ExecuteErr error
	Calls      []SaveCall
}

var _ commands.Save = (*SpySaveCommand)(nil)

func (s *SpySaveCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	target entities.SourceEntry,
	entries []entities.SourceEntry,
	opts commands.SaveOptions,
) error {
	s.Calls = append(s.Calls, SaveCall{Target: target, Entries: entries, Opts: opts})
	return s.ExecuteErr
}
