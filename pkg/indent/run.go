package indent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/src-d/enry/v2"
)

// binarySniffLen is how many leading bytes are inspected for binary content.
const binarySniffLen = 8000

// Scope selects how far indentation consistency is required to extend.
type Scope string

const (
	// ScopeFile requires each source to be consistent on its own.
	ScopeFile Scope = "file"
	// ScopeRun additionally requires all sources to share one style.
	ScopeRun Scope = "run"
)

// ParseScope converts a string to a Scope.
func ParseScope(s string) (Scope, bool) {
	switch Scope(s) {
	case ScopeFile, ScopeRun:
		return Scope(s), true
	default:
		return ScopeFile, false
	}
}

// Reporter receives classification events as they happen.
type Reporter interface {
	// Line is called once per line read, in order.
	Line(source string, line int, kind Kind)
	// SourceDone is called once per source after it is finalized,
	// including sources that failed to open or read.
	SourceDone(v *FileVerdict)
}

// RunOptions configures ClassifyRun.
type RunOptions struct {
	Reporter   Reporter
	Scope      Scope
	SkipBinary bool
	Logger     *slog.Logger
}

// Exit codes.
const (
	ExitOK           = 0
	ExitInconsistent = 1
	ExitError        = 2
)

// RunResult aggregates the verdicts of one invocation.
type RunResult struct {
	Verdicts    []*FileVerdict
	Scope       Scope
	Observed    KindSet // union over classified sources
	ScopeFailed bool    // run scope only: sources disagree on style
}

// Errors reports whether any source failed to open or read.
func (r *RunResult) Errors() bool {
	for _, v := range r.Verdicts {
		if v.Err != nil {
			return true
		}
	}
	return false
}

// Inconsistent reports whether any source, or the run as a whole, is inconsistent.
func (r *RunResult) Inconsistent() bool {
	if r.ScopeFailed {
		return true
	}
	for _, v := range r.Verdicts {
		if v.Failed {
			return true
		}
	}
	return false
}

// Passed reports whether the run is consistent and error free.
func (r *RunResult) Passed() bool {
	return !r.Errors() && !r.Inconsistent()
}

// ExitCode maps the result to a process exit status. Errors take precedence
// over inconsistency.
func (r *RunResult) ExitCode() int {
	switch {
	case r.Errors():
		return ExitError
	case r.Inconsistent():
		return ExitInconsistent
	default:
		return ExitOK
	}
}

// ClassifyFile reads r line by line and folds each line into a verdict for source.
// A read error stops the pass and is recorded as a *SourceReadError in the verdict.
func ClassifyFile(r io.Reader, source string, rep Reporter) *FileVerdict {
	v := NewFileVerdict(source)
	classifyInto(v, bufio.NewReader(r), rep)
	return v
}

func classifyInto(v *FileVerdict, br *bufio.Reader, rep Reporter) {
	lineNo := 0
	for {
		line, err := br.ReadSlice('\n')
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			v.Err = &SourceReadError{Source: v.Source, Line: lineNo + 1, Err: err}
			return
		}
		if len(line) == 0 {
			return
		}

		lineNo++
		var kind Kind
		if errors.Is(err, bufio.ErrBufferFull) {
			// Only the leading run matters; the rest of a long line is drained.
			if isWhitespaceOnly(line) {
				kind, err = continueRun(line, br)
			} else {
				kind = ClassifyLine(line)
				err = skipLine(br)
			}
		} else {
			kind = ClassifyLine(trimNewline(line))
		}

		v.Fold(lineNo, kind)
		if rep != nil {
			rep.Line(v.Source, lineNo, kind)
		}

		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			v.Err = &SourceReadError{Source: v.Source, Line: lineNo, Err: err}
			return
		}
	}
}

func trimNewline(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		return line[:n-1]
	}
	return line
}

func isWhitespaceOnly(b []byte) bool {
	for _, c := range b {
		if c != space && c != tab {
			return false
		}
	}
	return true
}

// continueRun keeps scanning a leading run that is longer than the read buffer.
// It returns the kind of the whole run and consumes the rest of the line.
func continueRun(head []byte, br *bufio.Reader) (Kind, error) {
	var s scanner
	for _, b := range head {
		s.step(b)
	}
	for {
		b, err := br.ReadByte()
		if err != nil {
			return s.kind(), err
		}
		if b == '\n' {
			return s.kind(), nil
		}
		if !s.step(b) {
			return s.kind(), skipLine(br)
		}
	}
}

// skipLine discards input up to and including the next newline.
func skipLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

// ClassifyRun classifies each source in order. A source that cannot be opened
// or read is recorded with its error and does not stop the run.
func ClassifyRun(sources []Source, opts RunOptions) *RunResult {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	scope := opts.Scope
	if scope == "" {
		scope = ScopeFile
	}

	result := &RunResult{Scope: scope}
	for _, src := range sources {
		v := classifySource(src, opts, logger)
		if v.Err == nil && !v.Skipped {
			result.Observed = result.Observed.Union(v.Observed)
		}
		result.Verdicts = append(result.Verdicts, v)
		if opts.Reporter != nil {
			opts.Reporter.SourceDone(v)
		}
	}

	if scope == ScopeRun && result.Observed.Has(Spaces) && result.Observed.Has(Tabs) {
		result.ScopeFailed = true
	}

	logger.Debug("run finished",
		slog.Int("sources", len(result.Verdicts)),
		slog.String("observed", result.Observed.String()),
		slog.Int("exit_code", result.ExitCode()))

	return result
}

func classifySource(src Source, opts RunOptions, logger *slog.Logger) *FileVerdict {
	v := NewFileVerdict(src.Name())
	if ls, ok := src.(interface{ Language() string }); ok {
		v.Language = ls.Language()
	}

	rc, err := src.Open()
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		v.Err = &SourceOpenError{Source: v.Source, Err: err}
		logger.Debug("open failed", slog.String("source", v.Source), slog.Any("error", err))
		return v
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			logger.Warn("close failed", slog.String("source", v.Source), slog.Any("error", cerr))
		}
	}()
	logger.Debug("classifying", slog.String("source", v.Source))

	br := bufio.NewReaderSize(rc, binarySniffLen*2)
	if opts.SkipBinary {
		head, perr := br.Peek(binarySniffLen)
		if perr != nil && !errors.Is(perr, io.EOF) && !errors.Is(perr, bufio.ErrBufferFull) {
			v.Err = &SourceReadError{Source: v.Source, Line: 1, Err: fmt.Errorf("peek: %w", perr)}
			return v
		}
		if enry.IsBinary(head) {
			v.Skipped = true
			logger.Debug("skipping binary source", slog.String("source", v.Source))
			return v
		}
	}

	classifyInto(v, br, opts.Reporter)
	logger.Debug("classified",
		slog.String("source", v.Source),
		slog.Int("lines", v.Lines),
		slog.String("observed", v.Observed.String()),
		slog.String("status", v.Status()))
	return v
}
