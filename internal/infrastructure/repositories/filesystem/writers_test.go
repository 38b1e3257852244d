//go:build unit

package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/aptsources/internal/infrastructure/repositories/filesystem"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestOverwriteWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("should replace the file content", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "a.list")
		other := filepath.Join(dir, "b.list")
		writeFile(t, path, "deb http://old.example.com stable main\ndeb http://older.example.com stable main\n")
		writeFile(t, other, "deb http://b.example.com stable main\n")
		writer := filesystem.NewOverwriteWriter()

		// when
		err := writer.Write(context.Background(), path, "deb http://new.example.com stable main\n")

		// then
		require.NoError(t, err)
		assert.Equal(t, "deb http://new.example.com stable main\n", readFile(t, path))
		assert.Equal(t, "deb http://b.example.com stable main\n", readFile(t, other))
	})

	t.Run("should produce the same content when written twice", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.list")
		writer := filesystem.NewOverwriteWriter()
		content := "deb [arch=amd64] http://a.example.com stable main\n"

		// when
		require.NoError(t, writer.Write(context.Background(), path, content))
		err := writer.Write(context.Background(), path, content)

		// then
		require.NoError(t, err)
		assert.Equal(t, content, readFile(t, path))
	})

	t.Run("should fail when the directory does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing", "a.list")
		writer := filesystem.NewOverwriteWriter()

		// when
		err := writer.Write(context.Background(), path, "deb http://a.example.com stable main\n")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create")
	})
}

func TestPathWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("should truncate an existing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "backup.list")
		writeFile(t, path, "a much longer previous content that must disappear\n")
		writer := filesystem.NewPathWriter()

		// when
		err := writer.Write(context.Background(), path, "deb http://a.example.com stable main\n")

		// then
		require.NoError(t, err)
		assert.Equal(t, "deb http://a.example.com stable main\n", readFile(t, path))
	})

	t.Run("should write empty content", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "empty.list")
		writer := filesystem.NewPathWriter()

		// when
		err := writer.Write(context.Background(), path, "")

		// then
		require.NoError(t, err)
		assert.Empty(t, readFile(t, path))
	})
}

func TestAccessCheckerWritable(t *testing.T) {
	t.Parallel()

	t.Run("should allow a new file in a writable directory", func(t *testing.T) {
		t.Parallel()

		// given
		checker := filesystem.NewAccessChecker()

		// when
		writable := checker.Writable(filepath.Join(t.TempDir(), "new.list"))

		// then
		assert.True(t, writable)
	})

	t.Run("should allow an existing file owned by the caller", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.list")
		writeFile(t, path, "")
		checker := filesystem.NewAccessChecker()

		// when
		writable := checker.Writable(path)

		// then
		assert.True(t, writable)
	})

	t.Run("should reject a path whose parent does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		checker := filesystem.NewAccessChecker()

		// when
		writable := checker.Writable(filepath.Join(t.TempDir(), "missing", "a.list"))

		// then
		assert.False(t, writable)
	})
}
