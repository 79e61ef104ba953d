package indent

import "strings"

// =============================================================================
// Kind
// =============================================================================

// Kind classifies the leading whitespace of a single line.
type Kind int

// Indentation kinds.
const (
	// None means the line has no leading space or tab.
	None Kind = iota
	// Spaces means the leading run consists only of spaces.
	Spaces
	// Tabs means the leading run consists only of horizontal tabs.
	Tabs
	// Mixed means the leading run contains both spaces and tabs.
	Mixed
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Spaces:
		return "spaces"
	case Tabs:
		return "tabs"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// ParseKind converts a string to a Kind value.
// Returns the kind and true if valid, or None and false if invalid.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "none":
		return None, true
	case "spaces":
		return Spaces, true
	case "tabs":
		return Tabs, true
	case "mixed":
		return Mixed, true
	default:
		return None, false
	}
}

// =============================================================================
// KindSet
// =============================================================================

// KindSet is the set of indentation kinds observed in a source.
// None is indentation-neutral and is never a member.
type KindSet uint8

func (s KindSet) bit(k Kind) KindSet {
	if k <= None || k > Mixed {
		return 0
	}
	return 1 << uint(k)
}

// Add returns the set with k added. Adding None leaves the set unchanged.
func (s KindSet) Add(k Kind) KindSet {
	return s | s.bit(k)
}

// Has reports whether k is a member of the set.
func (s KindSet) Has(k Kind) bool {
	b := s.bit(k)
	return b != 0 && s&b != 0
}

// Union returns the members of both sets.
func (s KindSet) Union(o KindSet) KindSet {
	return s | o
}

// Inconsistent reports whether the set holds both exclusive styles, or a mixed line.
func (s KindSet) Inconsistent() bool {
	return s.Has(Mixed) || (s.Has(Spaces) && s.Has(Tabs))
}

// Kinds returns the members in a stable order: spaces, tabs, mixed.
func (s KindSet) Kinds() []Kind {
	var kinds []Kind
	for _, k := range []Kind{Spaces, Tabs, Mixed} {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// String joins the members with commas, or returns "none" for the empty set.
func (s KindSet) String() string {
	kinds := s.Kinds()
	if len(kinds) == 0 {
		return "none"
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, ",")
}
