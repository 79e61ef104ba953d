// Package output renders indentect diagnostics for humans.
//
// Styling adapts to the environment: styled on a terminal, plain text when
// piped, unless the color mode forces one or the other.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/l0b0/indentect/pkg/indent"
)

// maxFlaggedShown caps the flagged line numbers listed per source in the summary.
const maxFlaggedShown = 8

// Renderer writes the verbose trace, the summary and source errors.
// It implements indent.Reporter.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	styled  bool
	styles  *Styles
}

var _ indent.Reporter = (*Renderer)(nil)

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, colorMode string, verbose bool) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), colorMode, verbose)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, colorMode string, verbose bool) *Renderer {
	styled := isTTY
	switch colorMode {
	case "always":
		styled = true
	case "never":
		styled = false
	}

	profile := termenv.Ascii
	if styled {
		profile = termenv.ANSI256
	}

	return &Renderer{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		styled:  styled,
		styles:  newStyles(lipgloss.NewRenderer(out), profile),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styled reports whether output carries ANSI styling.
func (r *Renderer) Styled() bool { return r.styled }

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles { return r.styles }

// Line prints one trace record in verbose mode: "source:line: kind".
func (r *Renderer) Line(source string, line int, kind indent.Kind) {
	if !r.verbose {
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s:%s: %s\n",
		r.styles.Source.Render(source),
		r.styles.Muted.Render(strconv.Itoa(line)),
		r.styles.Kind(kind))
}

// SourceDone reports source errors. Errors are always printed, verbose or not.
func (r *Renderer) SourceDone(v *indent.FileVerdict) {
	if v.Err != nil {
		r.Error(v.Err)
	}
}

// Error prints an error to the error stream.
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintf(r.errOut, "%s %v\n", r.styles.Error.Render("indentect:"), err)
}

// Summary prints the per-source summary table and the run verdict in verbose mode.
func (r *Renderer) Summary(res *indent.RunResult) {
	if !r.verbose {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Language", "Lines", "Kinds", "Flagged", "Status"})

	for _, v := range res.Verdicts {
		t.AppendRow(table.Row{
			v.Source,
			orDash(v.Language),
			humanize.Comma(int64(v.Lines)),
			r.kindSet(v.Observed),
			r.flagged(v.Flagged),
			r.styles.Status(v.Status()),
		})
	}
	t.Render()

	failed, errored := 0, 0
	for _, v := range res.Verdicts {
		switch {
		case v.Err != nil:
			errored++
		case v.Failed:
			failed++
		}
	}

	if res.ScopeFailed {
		_, _ = fmt.Fprintf(r.out, "%s sources mix %s and %s indentation\n",
			r.styles.Warning.Render("run:"),
			r.styles.Kind(indent.Spaces),
			r.styles.Kind(indent.Tabs))
	}

	verdict := r.styles.Status("pass")
	if !res.Passed() {
		verdict = r.styles.Status("fail")
	}
	_, _ = fmt.Fprintf(r.out, "%s: %s, %d inconsistent, %d %s (scope: %s)\n",
		verdict,
		pluralize(len(res.Verdicts), "source"),
		failed,
		errored,
		plural(errored, "error"),
		res.Scope)
}

func (r *Renderer) kindSet(s indent.KindSet) string {
	kinds := s.Kinds()
	if len(kinds) == 0 {
		return r.styles.Kind(indent.None)
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = r.styles.Kind(k)
	}
	return strings.Join(parts, ",")
}

func (r *Renderer) flagged(lines []int) string {
	if len(lines) == 0 {
		return "-"
	}
	shown := lines
	if len(shown) > maxFlaggedShown {
		shown = shown[:maxFlaggedShown]
	}
	parts := make([]string, len(shown))
	for i, n := range shown {
		parts[i] = strconv.Itoa(n)
	}
	s := strings.Join(parts, ",")
	if extra := len(lines) - len(shown); extra > 0 {
		s += r.styles.Muted.Render(fmt.Sprintf(" (+%d more)", extra))
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func pluralize(n int, word string) string {
	return fmt.Sprintf("%d %s", n, plural(n, word))
}
