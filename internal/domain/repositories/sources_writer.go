package repositories

import (
	"context"
	"fmt"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

// WriteMode selects how rendered content reaches its destination.
type WriteMode string

const (
	// ModeOverwrite removes the destination if present, then creates it.
	ModeOverwrite WriteMode = "overwrite"
	// ModePath creates or truncates an arbitrary path.
	ModePath WriteMode = "path"
	// ModeElevated writes through the privileged helper.
	ModeElevated WriteMode = "elevated"
	// ModeAuto picks ModeOverwrite when the destination is writable, ModeElevated otherwise.
	ModeAuto WriteMode = "auto"
)

// ParseWriteMode validates a write mode name.
func ParseWriteMode(name string) (WriteMode, error) {
	switch mode := WriteMode(name); mode {
	case ModeOverwrite, ModePath, ModeElevated, ModeAuto:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown write mode %q", name)
	}
}

// SourcesWriter puts the full rendered content of a sources file at path.
type SourcesWriter interface {
	Write(ctx context.Context, path, content string) error
}

// SourcesWriterFactory builds a writer for the given escalation settings.
type SourcesWriterFactory func(settings entities.EscalationSettings) SourcesWriter

// AccessChecker tells whether the current process may write a path.
type AccessChecker interface {
	Writable(path string) bool
}
