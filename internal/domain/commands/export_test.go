package commands

// ResolveFile exports resolveFile for testing.
var ResolveFile = resolveFile //nolint:gochecknoglobals // test export

// ReplaceEntry exports replaceEntry for testing.
var ReplaceEntry = replaceEntry //nolint:gochecknoglobals // test export
