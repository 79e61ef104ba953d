package indent

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/src-d/enry/v2"
)

// StdinName identifies the standard input source.
const StdinName = "stdin"

// Source is an input that can be opened exactly once for a single pass.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource is a named file on disk.
type FileSource string

// Name returns the path as given on the command line.
func (f FileSource) Name() string { return string(f) }

// Open opens the file for reading. Directories are rejected with ErrIsDirectory.
func (f FileSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, ErrIsDirectory
	}
	return file, nil
}

// Language returns the language enry associates with the file name, or "".
func (f FileSource) Language() string {
	base := filepath.Base(string(f))
	if lang, _ := enry.GetLanguageByExtension(base); lang != "" {
		return lang
	}
	lang, _ := enry.GetLanguageByFilename(base)
	return lang
}

type readerSource struct {
	r io.Reader
}

// StdinSource wraps r, normally os.Stdin, as the "stdin" source.
// Closing it leaves r open.
func StdinSource(r io.Reader) Source {
	return readerSource{r: r}
}

func (s readerSource) Name() string { return StdinName }

func (s readerSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}
