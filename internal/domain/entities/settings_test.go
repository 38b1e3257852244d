//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aptsources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should keep defaults for keys missing from the file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "sources_dir: /srv/apt\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/apt", settings.SourcesDir)
		assert.Equal(t, entities.DefaultWriteMode, settings.WriteMode)
		assert.Equal(t, entities.DefaultHelper, settings.Escalation.Helper)
		assert.Equal(t, entities.DefaultShell, settings.Escalation.Shell)
		assert.True(t, settings.Escalation.CheckExitStatus)
	})

	t.Run("should read escalation settings", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
write_mode: elevated
escalation:
  helper: sudo
  shell: sh
  check_exit_status: false
  quote: true
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "elevated", settings.WriteMode)
		assert.Equal(t, entities.EscalationSettings{
			Helper:          "sudo",
			Shell:           "sh",
			CheckExitStatus: false,
			Quote:           true,
		}, settings.Escalation)
	})

	t.Run("should expand environment variable references", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_APT_ROOT", "/tmp/apt-root")
		path := writeConfig(t, "sources_dir: ${TEST_APT_ROOT}/etc/apt\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/tmp/apt-root/etc/apt", settings.SourcesDir)
	})

	t.Run("should return error for an unknown write mode", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "write_mode: sideways\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "write_mode")
	})

	t.Run("should return error for an empty helper", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "escalation:\n  helper: \"\"\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "escalation.helper")
	})

	t.Run("should return error for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestSettingsListPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		expected string
	}{
		{name: "main list short name", file: "sources", expected: "/etc/apt/sources.list"},
		{name: "main list file name", file: "sources.list", expected: "/etc/apt/sources.list"},
		{name: "drop-in short name", file: "docker", expected: "/etc/apt/sources.list.d/docker.list"},
		{name: "drop-in file name", file: "docker.list", expected: "/etc/apt/sources.list.d/docker.list"},
		{name: "explicit path", file: "/opt/custom/extra.list", expected: "/opt/custom/extra.list"},
	}

	for _, tt := range tests {
		t.Run("should resolve "+tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			settings := entities.DefaultSettings()

			// when
			path := settings.ListPath(tt.file)

			// then
			assert.Equal(t, tt.expected, path)
		})
	}
}
