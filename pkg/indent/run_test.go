package indent_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l0b0/indentect/internal/testutil"
	"github.com/l0b0/indentect/pkg/indent"
)

type lineEvent struct {
	source string
	line   int
	kind   indent.Kind
}

type recordingReporter struct {
	lines []lineEvent
	done  []*indent.FileVerdict
}

func (r *recordingReporter) Line(source string, line int, kind indent.Kind) {
	r.lines = append(r.lines, lineEvent{source, line, kind})
}

func (r *recordingReporter) SourceDone(v *indent.FileVerdict) {
	r.done = append(r.done, v)
}

// failingReader returns data and then err.
type failingReader struct {
	data string
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.data == "" {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

// closeTracker records whether Close was called.
type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

type trackedSource struct {
	name string
	rc   *closeTracker
}

func (s trackedSource) Name() string                 { return s.name }
func (s trackedSource) Open() (io.ReadCloser, error) { return s.rc, nil }

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLines   int
		wantFailed  bool
		wantFlagged []int
	}{
		{name: "empty input", input: "", wantLines: 0},
		{name: "two space indentation", input: "a\n  b\n  c\n", wantLines: 3},
		{name: "no trailing newline", input: "a\n\tb", wantLines: 2},
		{name: "blank lines", input: "\n\n\n", wantLines: 3},
		{
			name:        "tab then spaces on line 3",
			input:       "a\n  b\n\t  x\n",
			wantLines:   3,
			wantFailed:  true,
			wantFlagged: []int{3},
		},
		{
			name:        "spaces and tabs on separate lines",
			input:       "  a\n\tb\n",
			wantLines:   2,
			wantFailed:  true,
			wantFlagged: []int{2},
		},
		{name: "crlf endings", input: "a\r\n  b\r\n", wantLines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := indent.ClassifyFile(strings.NewReader(tt.input), "test.txt", nil)
			require.NoError(t, v.Err)
			assert.Equal(t, "test.txt", v.Source)
			assert.Equal(t, tt.wantLines, v.Lines)
			assert.Equal(t, tt.wantFailed, v.Failed)
			assert.Equal(t, tt.wantFlagged, v.Flagged)
		})
	}
}

func TestClassifyFile_ReportsEveryLine(t *testing.T) {
	rep := &recordingReporter{}
	indent.ClassifyFile(strings.NewReader("x\n  y\n\tz\n\t  w\n"), "f", rep)

	assert.Equal(t, []lineEvent{
		{"f", 1, indent.None},
		{"f", 2, indent.Spaces},
		{"f", 3, indent.Tabs},
		{"f", 4, indent.Mixed},
	}, rep.lines)
}

func TestClassifyFile_LongLines(t *testing.T) {
	long := strings.Repeat("x", 100000)
	input := "  " + long + "\n" +
		strings.Repeat(" ", 70000) + "\t" + long + "\n" +
		strings.Repeat("\t", 70000) + "\n" +
		"  tail\n"

	rep := &recordingReporter{}
	v := indent.ClassifyFile(strings.NewReader(input), "long", rep)
	require.NoError(t, v.Err)

	require.Len(t, rep.lines, 4)
	assert.Equal(t, indent.Spaces, rep.lines[0].kind)
	assert.Equal(t, indent.Mixed, rep.lines[1].kind)
	assert.Equal(t, indent.Tabs, rep.lines[2].kind)
	assert.Equal(t, indent.Spaces, rep.lines[3].kind)
	assert.Equal(t, []int{2, 3}, v.Flagged)
}

func TestClassifyFile_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := &failingReader{data: "  a\n  b\n", err: boom}

	v := indent.ClassifyFile(r, "flaky", nil)

	var readErr *indent.SourceReadError
	require.ErrorAs(t, v.Err, &readErr)
	assert.Equal(t, "flaky", readErr.Source)
	assert.Equal(t, 3, readErr.Line)
	assert.ErrorIs(t, v.Err, boom)
	assert.Equal(t, 2, v.Lines)
	assert.Contains(t, v.Err.Error(), "flaky:3")
}

func TestClassifyRun(t *testing.T) {
	dir := t.TempDir()
	spaces := testutil.WriteFixture(t, dir, "spaces.txt", "a\n  b\n  c\n")
	tabs := testutil.WriteFixture(t, dir, "tabs.txt", "a\n\tb\n\tc\n")
	mixed := testutil.WriteFixture(t, dir, "mixed.txt", "a\n  b\n\t  x\n")
	missing := filepath.Join(dir, "missing.txt")

	t.Run("per-file scope allows different styles across files", func(t *testing.T) {
		res := indent.ClassifyRun([]indent.Source{indent.FileSource(spaces), indent.FileSource(tabs)}, indent.RunOptions{})
		assert.Equal(t, indent.ScopeFile, res.Scope)
		assert.True(t, res.Passed())
		assert.Equal(t, indent.ExitOK, res.ExitCode())
		assert.Equal(t, "spaces,tabs", res.Observed.String())
	})

	t.Run("run scope requires a single style", func(t *testing.T) {
		res := indent.ClassifyRun([]indent.Source{indent.FileSource(spaces), indent.FileSource(tabs)},
			indent.RunOptions{Scope: indent.ScopeRun})
		assert.True(t, res.ScopeFailed)
		assert.Equal(t, indent.ExitInconsistent, res.ExitCode())
		for _, v := range res.Verdicts {
			assert.False(t, v.Failed, "files stay individually consistent")
		}
	})

	t.Run("mixed file fails", func(t *testing.T) {
		res := indent.ClassifyRun([]indent.Source{indent.FileSource(spaces), indent.FileSource(mixed)}, indent.RunOptions{})
		require.Len(t, res.Verdicts, 2)
		assert.True(t, res.Verdicts[0].Passed())
		assert.True(t, res.Verdicts[1].Failed)
		assert.Equal(t, []int{3}, res.Verdicts[1].Flagged)
		assert.Equal(t, indent.ExitInconsistent, res.ExitCode())
	})

	t.Run("missing file is an error and the run continues", func(t *testing.T) {
		rep := &recordingReporter{}
		res := indent.ClassifyRun([]indent.Source{indent.FileSource(missing), indent.FileSource(mixed)},
			indent.RunOptions{Reporter: rep, Logger: testutil.NewTestLogger(t)})

		require.Len(t, res.Verdicts, 2)
		var openErr *indent.SourceOpenError
		require.ErrorAs(t, res.Verdicts[0].Err, &openErr)
		assert.Equal(t, missing, openErr.Source)
		assert.ErrorIs(t, res.Verdicts[0].Err, os.ErrNotExist)
		assert.Contains(t, res.Verdicts[0].Err.Error(), "missing.txt")

		assert.True(t, res.Verdicts[1].Failed, "second source still classified")
		assert.Equal(t, indent.ExitError, res.ExitCode(), "errors take precedence")
		assert.Len(t, rep.done, 2)
	})

	t.Run("directory is an open error", func(t *testing.T) {
		res := indent.ClassifyRun([]indent.Source{indent.FileSource(dir)}, indent.RunOptions{})
		assert.ErrorIs(t, res.Verdicts[0].Err, indent.ErrIsDirectory)
		assert.Equal(t, indent.ExitError, res.ExitCode())
	})
}

func TestClassifyRun_ClosesSources(t *testing.T) {
	ok := &closeTracker{Reader: strings.NewReader("  a\n")}
	broken := &closeTracker{Reader: &failingReader{data: "  a\n", err: errors.New("io")}}

	res := indent.ClassifyRun([]indent.Source{
		trackedSource{name: "ok", rc: ok},
		trackedSource{name: "broken", rc: broken},
	}, indent.RunOptions{})

	assert.True(t, ok.closed)
	assert.True(t, broken.closed, "closed on the read error path too")
	assert.Equal(t, indent.ExitError, res.ExitCode())
}

func TestClassifyRun_Stdin(t *testing.T) {
	rep := &recordingReporter{}
	res := indent.ClassifyRun([]indent.Source{indent.StdinSource(strings.NewReader("a\n    b\n    c\n"))},
		indent.RunOptions{Reporter: rep})

	require.Len(t, res.Verdicts, 1)
	assert.Equal(t, indent.StdinName, res.Verdicts[0].Source)
	assert.Equal(t, indent.ExitOK, res.ExitCode())
	assert.Equal(t, "stdin", rep.lines[1].source)
}

func TestClassifyRun_SkipBinary(t *testing.T) {
	dir := t.TempDir()
	bin := testutil.WriteFixture(t, dir, "blob.bin", "\x00\x01\x02\t \x00\n \tmixed\n")

	res := indent.ClassifyRun([]indent.Source{indent.FileSource(bin)}, indent.RunOptions{SkipBinary: true})
	assert.True(t, res.Verdicts[0].Skipped)
	assert.Equal(t, "skipped", res.Verdicts[0].Status())
	assert.Equal(t, indent.ExitOK, res.ExitCode())

	res = indent.ClassifyRun([]indent.Source{indent.FileSource(bin)}, indent.RunOptions{})
	assert.False(t, res.Verdicts[0].Skipped)
	assert.Equal(t, indent.ExitInconsistent, res.ExitCode())
}

func TestFileSource_Language(t *testing.T) {
	assert.Equal(t, "Go", indent.FileSource("cmd/main.go").Language())
	assert.Equal(t, "Python", indent.FileSource("x/y/script.py").Language())
	assert.Equal(t, "Makefile", indent.FileSource("Makefile").Language())
}

func TestParseScope(t *testing.T) {
	s, ok := indent.ParseScope("run")
	assert.True(t, ok)
	assert.Equal(t, indent.ScopeRun, s)

	s, ok = indent.ParseScope("galaxy")
	assert.False(t, ok)
	assert.Equal(t, indent.ScopeFile, s)
}
