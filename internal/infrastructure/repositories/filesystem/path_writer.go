package filesystem

import (
	"context"

	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// PathWriter writes rendered content to an arbitrary path, truncating any existing file.
type PathWriter struct{}

var _ repositories.SourcesWriter = (*PathWriter)(nil)

// NewPathWriter creates a PathWriter.
func NewPathWriter() *PathWriter {
	return &PathWriter{}
}

// Write creates or truncates path and writes content into it.
func (it *PathWriter) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return createAndWrite(path, content)
}
