package elevated

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	escapedNewline       = `\\n` // unquoted: the shell reduces it to \n, which echo -e expands
	quotedEscapedNewline = `\n`
	singleQuote          = `'`
	escapedSingleQuote   = `'\''`
)

// CommandRunner runs a process to completion and returns its combined output and
// exit code. The error is reserved for processes that could not be started.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, int, error)

// RunCommand is the CommandRunner backed by os/exec.
func RunCommand(ctx context.Context, name string, args ...string) ([]byte, int, error) {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return output, exitErr.ExitCode(), nil
	}
	if err != nil {
		return output, -1, err
	}
	return output, 0, nil
}

// BuildEchoCommand renders the shell snippet that writes content to path:
//
//	echo -e <content> > <path>
//
// Every newline of content becomes the three characters `\\n`. Neither the payload
// nor the path is quoted, so the shell still applies word splitting, globbing and
// `#` comments to them.
func BuildEchoCommand(content, path string) string {
	return fmt.Sprintf("echo -e %s > %s", strings.ReplaceAll(content, "\n", escapedNewline), path)
}

// BuildQuotedEchoCommand renders the same snippet with the payload and path wrapped
// in single quotes, newlines written as `\n` for echo -e to expand.
func BuildQuotedEchoCommand(content, path string) string {
	payload := strings.ReplaceAll(quote(content), "\n", quotedEscapedNewline)
	return fmt.Sprintf("echo -ne %s > %s", payload, quote(path))
}

func quote(value string) string {
	return singleQuote + strings.ReplaceAll(value, singleQuote, escapedSingleQuote) + singleQuote
}
