// Package style defines the terminal styling for itol's command output.
// Colors are adaptive and degrade to plain text when stdout is not a
// terminal.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color definitions using AdaptiveColor for automatic light/dark mode
// switching
var (
	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8", // Cyan
		Dark:  "#4DD0E1",
	}

	PathColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	URLColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	URLStyle = lipgloss.NewStyle().
			Foreground(URLColor).
			Underline(true)
)

// Status indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Success renders a styled success line.
func Success(s string) string { return SuccessIndicator + " " + SuccessStyle.Render(s) }

// Error renders a styled error line.
func Error(s string) string { return ErrorIndicator + " " + ErrorStyle.Render(s) }

// Warning renders a styled warning line.
func Warning(s string) string { return WarningIndicator + " " + WarningStyle.Render(s) }

// Path renders a filesystem path.
func Path(s string) string { return PathStyle.Render(s) }

// URL renders a hyperlink target.
func URL(s string) string { return URLStyle.Render(s) }

// Bold emphasizes a fragment inline.
func Bold(s string) string { return lipgloss.NewStyle().Bold(true).Render(s) }
