package indent

import (
	"errors"
	"fmt"
)

// ErrIsDirectory is wrapped by a SourceOpenError when a named source is a directory.
var ErrIsDirectory = errors.New("is a directory")

// SourceOpenError reports a source that could not be opened.
type SourceOpenError struct {
	Source string
	Err    error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("%s: cannot open: %v", e.Source, e.Err)
}

func (e *SourceOpenError) Unwrap() error { return e.Err }

// SourceReadError reports an I/O failure after a source was opened.
// Line is the number of the line being read when the failure occurred.
type SourceReadError struct {
	Source string
	Line   int
	Err    error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("%s:%d: read error: %v", e.Source, e.Line, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }
