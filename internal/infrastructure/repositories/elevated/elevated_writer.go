package elevated

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// ElevatedWriter writes sources files the current process cannot write by running
// `<helper> <shell> -c "echo -e ... > path"` (pkexec bash by default).
type ElevatedWriter struct {
	settings entities.EscalationSettings
	run      CommandRunner
}

var _ repositories.SourcesWriter = (*ElevatedWriter)(nil)

// NewElevatedWriter creates an ElevatedWriter that spawns real processes.
func NewElevatedWriter(settings entities.EscalationSettings) *ElevatedWriter {
	return NewElevatedWriterWithRunner(settings, RunCommand)
}

// NewElevatedWriterWithRunner creates an ElevatedWriter with a custom process runner.
func NewElevatedWriterWithRunner(settings entities.EscalationSettings, run CommandRunner) *ElevatedWriter {
	return &ElevatedWriter{settings: settings, run: run}
}

// Write blocks until the helper exits. A helper that cannot be started is always
// an error; a non-zero exit is only reported when CheckExitStatus is set.
func (it *ElevatedWriter) Write(ctx context.Context, path, content string) error {
	snippet := BuildEchoCommand(content, path)
	if it.settings.Quote {
		snippet = BuildQuotedEchoCommand(content, path)
	}

	logger.Debugf("Running %s %s -c %q", it.settings.Helper, it.settings.Shell, snippet)
	output, exitCode, err := it.run(ctx, it.settings.Helper, it.settings.Shell, "-c", snippet)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", it.settings.Helper, err)
	}

	if exitCode != 0 {
		detail := strings.TrimSpace(string(output))
		if it.settings.CheckExitStatus {
			return fmt.Errorf("%s exited with status %d writing %q: %s", it.settings.Helper, exitCode, path, detail)
		}
		logger.Warnf("%s exited with status %d writing %s: %s", it.settings.Helper, exitCode, path, detail)
	}
	return nil
}
