package entities

import "strings"

// ExtractEntries flattens parsed sources files into entries, in file-then-line order.
// Active directives become enabled entries; comment lines that still hold a valid
// directive once the comment marker is removed become disabled entries. Any other
// comment is ignored.
func ExtractEntries(files []SourceFile) []SourceEntry {
	var entries []SourceEntry
	for _, file := range files {
		for _, line := range file.Lines {
			switch line.Kind {
			case LineDirective:
				entries = append(entries, NewSourceEntry(line.Directive, true, file.Path))
			case LineComment:
				for _, subLine := range line.SubLines() {
					if directive, ok := disabledDirective(subLine); ok {
						entries = append(entries, NewSourceEntry(directive, false, file.Path))
					}
				}
			case LineBlank, LineInvalid:
			}
		}
	}
	return entries
}

// disabledDirective recovers the directive held by a commented-out line.
// Lines that do not parse are ordinary comments, not errors.
func disabledDirective(line string) (*Directive, bool) {
	if !strings.HasPrefix(line, prefixDisabledBinary) && !strings.HasPrefix(line, prefixDisabledSource) {
		return nil, false
	}

	directive, err := ParseDirective(strings.TrimLeft(line, commentMarker))
	if err != nil {
		return nil, false
	}
	return directive, true
}
