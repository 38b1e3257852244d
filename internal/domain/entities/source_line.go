package entities

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/shlex"
)

const minDirectiveTokens = 2 // url + suite

// LineKind classifies a single line of a sources list file.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineDirective
	LineInvalid
)

// Directive is a decoded `deb` or `deb-src` line.
type Directive struct {
	Source     bool
	Options    string
	URL        string
	Suite      string
	Components []string
}

// SourceLine is one classified line of a sources list file. Consecutive comment
// lines are grouped into a single SourceLine whose Text holds one sub-line per
// original line.
type SourceLine struct {
	Kind      LineKind
	Text      string
	Directive *Directive
}

// SubLines splits a comment block back into its original lines.
func (it SourceLine) SubLines() []string {
	return strings.Split(it.Text, "\n")
}

// SourceFile is a parsed sources list file.
type SourceFile struct {
	Path  string
	Lines []SourceLine
}

// ParseDirective decodes an active directive line of the form
//
//	deb|deb-src [ [options] ] url suite [component...]
//
// A trailing `# comment` is ignored. The URL, suite and components are not validated.
func ParseDirective(text string) (*Directive, error) {
	head, rest := splitHead(strings.TrimSpace(text))

	var directive Directive
	switch head {
	case prefixBinary:
	case prefixSource:
		directive.Source = true
	default:
		return nil, fmt.Errorf("%w: unknown directive type %q", ErrInvalidLine, head)
	}

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated options in %q", ErrInvalidLine, text)
		}
		directive.Options = strings.TrimSpace(rest[1:end])
		rest = rest[end+1:]
	}

	tokens, err := shlex.Split(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLine, err)
	}
	if len(tokens) < minDirectiveTokens {
		return nil, fmt.Errorf("%w: expected url and suite in %q", ErrInvalidLine, text)
	}

	directive.URL = tokens[0]
	directive.Suite = tokens[1]
	directive.Components = tokens[minDirectiveTokens:]
	return &directive, nil
}

// ParseSourceLine classifies a single raw line.
func ParseSourceLine(text string) SourceLine {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return SourceLine{Kind: LineBlank, Text: trimmed}
	case strings.HasPrefix(trimmed, commentMarker):
		return SourceLine{Kind: LineComment, Text: trimmed}
	}

	directive, err := ParseDirective(trimmed)
	if err != nil {
		return SourceLine{Kind: LineInvalid, Text: trimmed}
	}
	return SourceLine{Kind: LineDirective, Text: trimmed, Directive: directive}
}

// ParseSourceFile classifies every line of content and groups adjacent comments.
func ParseSourceFile(path, content string) SourceFile {
	file := SourceFile{Path: path}

	for _, raw := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		line := ParseSourceLine(strings.TrimSuffix(raw, "\r"))

		last := len(file.Lines) - 1
		if line.Kind == LineComment && last >= 0 && file.Lines[last].Kind == LineComment {
			file.Lines[last].Text += "\n" + line.Text
			continue
		}
		file.Lines = append(file.Lines, line)
	}

	if len(file.Lines) == 1 && file.Lines[0].Kind == LineBlank && content == "" {
		file.Lines = nil
	}
	return file
}

// splitHead returns the first whitespace-delimited token and the remainder.
func splitHead(text string) (string, string) {
	idx := strings.IndexFunc(text, unicode.IsSpace)
	if idx < 0 {
		return text, ""
	}
	return text[:idx], text[idx:]
}
