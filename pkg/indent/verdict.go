package indent

// FileVerdict aggregates the classification of one input source.
type FileVerdict struct {
	Source   string
	Observed KindSet
	Style    Kind  // first exclusive kind seen (Spaces or Tabs), None until then
	Flagged  []int // 1-based line numbers, strictly increasing
	Failed   bool  // indentation failure; sticky once set
	Lines    int
	Counts   map[Kind]int
	Err      error // *SourceOpenError or *SourceReadError
	Skipped  bool  // binary source that was not classified
	Language string
}

// NewFileVerdict creates an empty verdict for the named source.
func NewFileVerdict(source string) *FileVerdict {
	return &FileVerdict{
		Source: source,
		Counts: make(map[Kind]int),
	}
}

// Fold records the classification of line number line.
//
// A Mixed line is always flagged. An exclusive line (Spaces or Tabs) is flagged
// when it disagrees with the style established by the first exclusive line.
func (v *FileVerdict) Fold(line int, kind Kind) {
	v.Lines++
	v.Counts[kind]++
	if kind == None {
		return
	}

	v.Observed = v.Observed.Add(kind)

	flag := false
	switch kind {
	case Mixed:
		flag = true
	case Spaces, Tabs:
		if v.Style == None {
			v.Style = kind
		} else if v.Style != kind {
			flag = true
		}
	}

	if flag {
		v.Flagged = append(v.Flagged, line)
		v.Failed = true
	}
}

// Passed reports whether the source is consistent and was read without error.
func (v *FileVerdict) Passed() bool {
	return !v.Failed && v.Err == nil
}

// Status returns "pass", "fail", "error" or "skipped".
func (v *FileVerdict) Status() string {
	switch {
	case v.Err != nil:
		return "error"
	case v.Failed:
		return "fail"
	case v.Skipped:
		return "skipped"
	default:
		return "pass"
	}
}
