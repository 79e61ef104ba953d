package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/l0b0/indentect/pkg/indent"
)

// Styles holds the lipgloss styles used for human-readable output.
type Styles struct {
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Source  lipgloss.Style

	Spaces lipgloss.Style
	Tabs   lipgloss.Style
	Mixed  lipgloss.Style
}

// newStyles builds styles bound to lr. With profile Ascii every style renders
// its input unchanged.
func newStyles(lr *lipgloss.Renderer, profile termenv.Profile) *Styles {
	lr.SetColorProfile(profile)
	return &Styles{
		Pass:    lr.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Fail:    lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("3")),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lr.NewStyle().Bold(true),
		Source:  lr.NewStyle().Foreground(lipgloss.Color("6")),
		Spaces:  lr.NewStyle().Foreground(lipgloss.Color("4")),
		Tabs:    lr.NewStyle().Foreground(lipgloss.Color("5")),
		Mixed:   lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Kind renders an indentation kind in its style.
func (s *Styles) Kind(k indent.Kind) string {
	switch k {
	case indent.Spaces:
		return s.Spaces.Render(k.String())
	case indent.Tabs:
		return s.Tabs.Render(k.String())
	case indent.Mixed:
		return s.Mixed.Render(k.String())
	default:
		return s.Muted.Render(k.String())
	}
}

// Status renders a verdict status in its style.
func (s *Styles) Status(status string) string {
	switch status {
	case "pass":
		return s.Pass.Render(status)
	case "fail":
		return s.Fail.Render(status)
	case "error":
		return s.Error.Render(status)
	default:
		return s.Muted.Render(status)
	}
}
