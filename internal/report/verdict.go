package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	yesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	noStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// ShouldUseColor reports whether styled output should go to w. NO_COLOR wins
// over force; otherwise only terminals get color.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Verdict renders a yes/no answer.
func Verdict(ok, color bool) string {
	text := "no"
	style := noStyle
	if ok {
		text = "yes"
		style = yesStyle
	}
	if !color {
		return text
	}
	return style.Render(text)
}
