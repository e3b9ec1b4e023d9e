package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.Color("39")  // blue
	ColorSuccess = lipgloss.Color("42")  // green
	ColorError   = lipgloss.Color("196") // red
	ColorWarning = lipgloss.Color("214") // amber
	ColorMuted   = lipgloss.Color("245") // gray
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	accentStyle  = lipgloss.NewStyle().Foreground(ColorPrimary)
	okStyle      = lipgloss.NewStyle().Foreground(ColorSuccess)
	errStyle     = lipgloss.NewStyle().Foreground(ColorError)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorWarning)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// AutoDetect lowers the color profile to plain text when stdout is not a
// terminal or NO_COLOR is set. Styled output keeps rendering either way —
// a failed capability query must never abort the run.
func AutoDetect() {
	fd := os.Stdout.Fd()
	if os.Getenv("NO_COLOR") != "" ||
		(!isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)) {
		ForcePlain()
	}
}

// ForcePlain disables all styling unconditionally.
func ForcePlain() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
