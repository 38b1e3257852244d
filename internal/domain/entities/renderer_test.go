//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/test/domain/entitybuilders"
)

func TestSourceEntryRender(t *testing.T) {
	t.Parallel()

	t.Run("should render the bracketed clause when options are set", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewSourceEntryBuilder().
			WithOptions("priority=1").
			WithURL("http://example.com").
			WithSuite("stable").
			WithComponents("main").
			BuildSourceEntry()

		// when
		line := entry.Render()

		// then
		assert.Equal(t, "deb [priority=1] http://example.com stable main\n", line)
	})

	t.Run("should render no brackets and no extra spaces without options", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewSourceEntryBuilder().
			WithURL("http://example.com").
			WithSuite("stable").
			WithComponents("main contrib").
			BuildSourceEntry()

		// when
		line := entry.Render()

		// then
		assert.Equal(t, "deb http://example.com stable main contrib\n", line)
	})

	t.Run("should render the disabled source prefix", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewSourceEntryBuilder().
			WithEnabled(false).
			WithSource(true).
			WithURL("http://example.com").
			WithSuite("stable").
			WithComponents("main").
			BuildSourceEntry()

		// when
		line := entry.Render()

		// then
		assert.Equal(t, "#deb-src http://example.com stable main\n", line)
	})

	t.Run("should not depend on the origin of the entry", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewSourceEntryBuilder()
		first := builder.WithFilePath("/etc/apt/sources.list").BuildSourceEntry()
		second := builder.WithFilePath("/tmp/other.list").BuildSourceEntry()

		// when / then
		assert.Equal(t, first.Render(), second.Render())
	})
}

func TestRenderFile(t *testing.T) {
	t.Parallel()

	t.Run("should only render entries sharing the target origin path", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewSourceEntryBuilder()
		a1 := builder.WithFilePath("/etc/apt/sources.list").WithSuite("jammy").BuildSourceEntry()
		b1 := builder.WithFilePath("/etc/apt/sources.list.d/b.list").WithSuite("focal").BuildSourceEntry()
		a2 := builder.WithFilePath("/etc/apt/sources.list").WithSuite("jammy-updates").BuildSourceEntry()

		// when
		content := entities.RenderFile(a1, []entities.SourceEntry{a1, b1, a2})

		// then
		assert.Equal(t,
			"deb http://archive.ubuntu.com/ubuntu jammy main restricted\n"+
				"deb http://archive.ubuntu.com/ubuntu jammy-updates main restricted\n",
			content,
		)
	})

	t.Run("should compare origin paths verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewSourceEntryBuilder()
		target := builder.WithFilePath("/etc/apt/sources.list").BuildSourceEntry()
		uncleaned := builder.WithFilePath("/etc/apt/../apt/sources.list").BuildSourceEntry()

		// when
		content := entities.RenderFile(target, []entities.SourceEntry{uncleaned})

		// then
		assert.Empty(t, content)
	})

	t.Run("should reproduce equivalent entries after a round-trip", func(t *testing.T) {
		t.Parallel()

		// given
		const path = "/etc/apt/sources.list.d/roundtrip.list"
		builder := entitybuilders.NewSourceEntryBuilder().WithFilePath(path)
		original := []entities.SourceEntry{
			builder.WithEnabled(true).WithSource(false).BuildSourceEntry(),
			builder.WithEnabled(false).WithSource(false).WithOptions("arch=amd64").BuildSourceEntry(),
			builder.WithEnabled(true).WithSource(true).WithOptions("").WithSuite("jammy-security").BuildSourceEntry(),
			builder.WithEnabled(false).WithSource(true).WithComponents("universe").BuildSourceEntry(),
			builder.WithEnabled(true).WithSource(false).WithSuite("./").WithComponents("").BuildSourceEntry(),
		}

		// when
		content := entities.RenderFile(original[0], original)
		reread := entities.ExtractEntries([]entities.SourceFile{entities.ParseSourceFile(path, content)})

		// then
		require.Len(t, reread, len(original))
		for i := range original {
			assert.True(t, original[i].SameContent(reread[i]), "entry %d: %+v != %+v", i, original[i], reread[i])
			assert.Equal(t, path, reread[i].FilePath)
		}
	})
}

func TestSourceEntryWithEnabled(t *testing.T) {
	t.Parallel()

	t.Run("should return a toggled copy without touching the original", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewSourceEntryBuilder().BuildSourceEntry()

		// when
		disabled := entry.WithEnabled(false)

		// then
		assert.True(t, entry.Enabled)
		assert.False(t, disabled.Enabled)
		assert.Equal(t, entities.KindDisabledBinary, disabled.Kind())
	})
}
