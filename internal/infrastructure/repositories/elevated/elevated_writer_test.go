//go:build unit

package elevated_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/infrastructure/repositories/elevated"
)

type runCall struct {
	name string
	args []string
}

// recordingRunner returns a CommandRunner answering with the given result.
func recordingRunner(calls *[]runCall, output string, exitCode int, err error) elevated.CommandRunner {
	return func(_ context.Context, name string, args ...string) ([]byte, int, error) {
		*calls = append(*calls, runCall{name: name, args: args})
		return []byte(output), exitCode, err
	}
}

func TestBuildEchoCommand(t *testing.T) {
	t.Parallel()

	t.Run("should escape every newline as backslash backslash n", func(t *testing.T) {
		t.Parallel()

		// given
		content := "deb http://a stable main\n"

		// when
		snippet := elevated.BuildEchoCommand(content, "/etc/apt/sources.list")

		// then
		assert.Equal(t, `echo -e deb http://a stable main\\n > /etc/apt/sources.list`, snippet)
	})

	t.Run("should leave options and path unquoted", func(t *testing.T) {
		t.Parallel()

		// given
		content := "deb [arch=amd64] http://a stable main\ndeb-src http://a stable main\n"

		// when
		snippet := elevated.BuildEchoCommand(content, "/etc/apt/sources.list.d/a.list")

		// then
		assert.Equal(t,
			`echo -e deb [arch=amd64] http://a stable main\\ndeb-src http://a stable main\\n > /etc/apt/sources.list.d/a.list`,
			snippet,
		)
	})
}

func TestBuildQuotedEchoCommand(t *testing.T) {
	t.Parallel()

	// given
	content := "deb http://a stable main\n#deb http://it's stable main\n"

	// when
	snippet := elevated.BuildQuotedEchoCommand(content, "/etc/apt/my list.list")

	// then
	assert.Equal(t,
		`echo -ne 'deb http://a stable main\n#deb http://it'\''s stable main\n' > '/etc/apt/my list.list'`,
		snippet,
	)
}

func TestElevatedWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("should run the helper with the shell snippet", func(t *testing.T) {
		t.Parallel()

		// given
		var calls []runCall
		settings := entities.DefaultSettings().Escalation
		writer := elevated.NewElevatedWriterWithRunner(settings, recordingRunner(&calls, "", 0, nil))

		// when
		err := writer.Write(context.Background(), "/etc/apt/sources.list", "deb http://a stable main\n")

		// then
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, "pkexec", calls[0].name)
		assert.Equal(t, []string{
			"bash", "-c", `echo -e deb http://a stable main\\n > /etc/apt/sources.list`,
		}, calls[0].args)
	})

	t.Run("should use the quoted snippet when configured", func(t *testing.T) {
		t.Parallel()

		// given
		var calls []runCall
		settings := entities.EscalationSettings{Helper: "sudo", Shell: "sh", Quote: true}
		writer := elevated.NewElevatedWriterWithRunner(settings, recordingRunner(&calls, "", 0, nil))

		// when
		err := writer.Write(context.Background(), "/etc/apt/sources.list", "deb http://a stable main\n")

		// then
		require.NoError(t, err)
		assert.Equal(t, "sudo", calls[0].name)
		assert.Equal(t, []string{
			"sh", "-c", `echo -ne 'deb http://a stable main\n' > '/etc/apt/sources.list'`,
		}, calls[0].args)
	})

	t.Run("should fail on a non-zero exit when the status is checked", func(t *testing.T) {
		t.Parallel()

		// given
		var calls []runCall
		settings := entities.DefaultSettings().Escalation
		writer := elevated.NewElevatedWriterWithRunner(settings, recordingRunner(&calls, "Not authorized\n", 126, nil))

		// when
		err := writer.Write(context.Background(), "/etc/apt/sources.list", "deb http://a stable main\n")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exited with status 126")
		assert.Contains(t, err.Error(), "Not authorized")
	})

	t.Run("should only warn on a non-zero exit when the status is unchecked", func(t *testing.T) {
		t.Parallel()

		// given
		var calls []runCall
		settings := entities.DefaultSettings().Escalation
		settings.CheckExitStatus = false
		writer := elevated.NewElevatedWriterWithRunner(settings, recordingRunner(&calls, "", 1, nil))

		// when
		err := writer.Write(context.Background(), "/etc/apt/sources.list", "deb http://a stable main\n")

		// then
		require.NoError(t, err)
	})

	t.Run("should fail when the helper cannot be started", func(t *testing.T) {
		t.Parallel()

		// given
		var calls []runCall
		spawnErr := errors.New("executable file not found in $PATH")
		settings := entities.DefaultSettings().Escalation
		settings.CheckExitStatus = false
		writer := elevated.NewElevatedWriterWithRunner(settings, recordingRunner(&calls, "", -1, spawnErr))

		// when
		err := writer.Write(context.Background(), "/etc/apt/sources.list", "deb http://a stable main\n")

		// then
		require.ErrorIs(t, err, spawnErr)
		assert.Contains(t, err.Error(), "failed to run pkexec")
	})
}
