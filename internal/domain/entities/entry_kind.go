package entities

const (
	prefixBinary         = "deb"
	prefixSource         = "deb-src"
	prefixDisabledBinary = "#deb"
	prefixDisabledSource = "#deb-src"
	commentMarker        = "#"
)

// EntryKind is the closed set of directive kinds a sources list entry can take.
type EntryKind int

const (
	KindBinary EntryKind = iota
	KindSource
	KindDisabledBinary
	KindDisabledSource
)

// KindOf maps the enabled and source flags of an entry to its kind.
func KindOf(enabled, isSource bool) EntryKind {
	switch {
	case enabled && isSource:
		return KindSource
	case enabled:
		return KindBinary
	case isSource:
		return KindDisabledSource
	default:
		return KindDisabledBinary
	}
}

// Prefix returns the leading token written for this kind.
func (it EntryKind) Prefix() string {
	switch it {
	case KindSource:
		return prefixSource
	case KindDisabledBinary:
		return prefixDisabledBinary
	case KindDisabledSource:
		return prefixDisabledSource
	default:
		return prefixBinary
	}
}

// Enabled reports whether lines of this kind are active directives.
func (it EntryKind) Enabled() bool {
	return it == KindBinary || it == KindSource
}

// IsSource reports whether lines of this kind name source packages.
func (it EntryKind) IsSource() bool {
	return it == KindSource || it == KindDisabledSource
}

func (it EntryKind) String() string {
	return it.Prefix()
}
