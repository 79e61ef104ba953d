// Package indent classifies leading-whitespace indentation and folds per-line
// classifications into per-source and per-run verdicts.
//
// Only the space (0x20) and horizontal tab (0x09) bytes form a leading run.
// Form feed, vertical tab and every other byte end the run.
package indent

const (
	space = ' '
	tab   = '\t'
)

// scanner accumulates the state of a leading run one byte at a time.
type scanner struct {
	sawSpace   bool
	sawTab     bool
	transition bool // a tab followed a space or a space followed a tab
	prev       byte
}

// step feeds one byte and reports whether it belongs to the leading run.
func (s *scanner) step(b byte) bool {
	switch b {
	case space:
		s.sawSpace = true
	case tab:
		s.sawTab = true
	default:
		return false
	}
	if s.prev != 0 && s.prev != b {
		s.transition = true
	}
	s.prev = b
	return true
}

func (s *scanner) kind() Kind {
	switch {
	case !s.sawSpace && !s.sawTab:
		return None
	case s.transition || (s.sawSpace && s.sawTab):
		return Mixed
	case s.sawTab:
		return Tabs
	default:
		return Spaces
	}
}

// ClassifyLine returns the indentation kind of a line's leading run.
// The line must not include its terminating newline. A whitespace-only line is
// classified by its whole content.
func ClassifyLine(line []byte) Kind {
	var s scanner
	for _, b := range line {
		if !s.step(b) {
			break
		}
	}
	return s.kind()
}

// ClassifyString is ClassifyLine for string input.
func ClassifyString(line string) Kind {
	var s scanner
	for i := 0; i < len(line); i++ {
		if !s.step(line[i]) {
			break
		}
	}
	return s.kind()
}
