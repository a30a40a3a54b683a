package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles of the analysis view.
type Styles struct {
	Winner   lipgloss.Style
	Vetoed   lipgloss.Style
	GroupKey lipgloss.Style
	Invalid  lipgloss.Style
}

// DefaultStyles returns the stock analysis styling: winners bold green,
// vetoed candidates faint, invalid entries yellow.
func DefaultStyles() Styles {
	return Styles{
		Winner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Vetoed:   lipgloss.NewStyle().Faint(true),
		GroupKey: lipgloss.NewStyle().Bold(true),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// colorEnabled decides whether styled output makes sense for the given
// writer: the writer must be a terminal, the terminal must support
// color, and neither the caller nor NO_COLOR may have disabled it.
func colorEnabled(w interface{}, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
