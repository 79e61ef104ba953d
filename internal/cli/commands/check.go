// Package commands implements the body of the indentect command.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/l0b0/indentect/internal/cli/config"
	"github.com/l0b0/indentect/internal/cli/output"
	"github.com/l0b0/indentect/pkg/indent"
)

// stdinArg names standard input among FILE arguments.
const stdinArg = "-"

// CheckOptions holds options for a check run.
type CheckOptions struct {
	Files []string  // FILE arguments; empty means standard input
	Stdin io.Reader // used for "-" and when Files is empty
}

// RunCheck classifies every source, reports through the renderer and returns
// an *ExitError when the run is not clean.
func RunCheck(cmd *cobra.Command, opts *CheckOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Color, cfg.Verbose)

	sources := BuildSources(opts.Files, opts.Stdin)
	logger.Debug("starting run",
		slog.Int("sources", len(sources)),
		slog.String("scope", cfg.Scope),
		slog.Bool("skip_binary", cfg.SkipBinary))

	res := indent.ClassifyRun(sources, indent.RunOptions{
		Reporter:   r,
		Scope:      cfg.RunScope(),
		SkipBinary: cfg.SkipBinary,
		Logger:     logger,
	})
	r.Summary(res)

	if code := res.ExitCode(); code != indent.ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}

// BuildSources maps FILE arguments to sources. No arguments means a single
// standard input source; "-" also names standard input.
func BuildSources(files []string, stdin io.Reader) []indent.Source {
	if len(files) == 0 {
		return []indent.Source{indent.StdinSource(stdin)}
	}
	sources := make([]indent.Source, 0, len(files))
	for _, f := range files {
		if f == stdinArg {
			sources = append(sources, indent.StdinSource(stdin))
			continue
		}
		sources = append(sources, indent.FileSource(f))
	}
	return sources
}
