// Package output prints styled user-facing messages for the domino CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color styles for terminal output
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Stdout receives regular messages; Stderr receives errors.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Success prints a success message
func Success(format string, args ...any) {
	_, _ = fmt.Fprint(Stdout, successStyle.Render("✓ "))
	_, _ = fmt.Fprintf(Stdout, format+"\n", args...)
}

// Warning prints a warning message
func Warning(format string, args ...any) {
	_, _ = fmt.Fprint(Stdout, warningStyle.Render("⚠ "))
	_, _ = fmt.Fprintf(Stdout, format+"\n", args...)
}

// Error prints an error message to Stderr
func Error(format string, args ...any) {
	_, _ = fmt.Fprint(Stderr, errorStyle.Render("✗ "))
	_, _ = fmt.Fprintf(Stderr, format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...any) {
	_, _ = fmt.Fprint(Stdout, infoStyle.Render("ℹ "))
	_, _ = fmt.Fprintf(Stdout, format+"\n", args...)
}

// Muted prints a muted message
func Muted(format string, args ...any) {
	_, _ = fmt.Fprintln(Stdout, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a section header
func Section(title string) {
	_, _ = fmt.Fprintln(Stdout)
	_, _ = fmt.Fprintln(Stdout, primaryStyle.Render(title))
	_, _ = fmt.Fprintln(Stdout, mutedStyle.Render(strings.Repeat("═", lipgloss.Width(title))))
	_, _ = fmt.Fprintln(Stdout)
}

// StatusIcon returns a colored icon for an artifact status
func StatusIcon(status string) string {
	switch status {
	case "created":
		return successStyle.Render("✓")
	case "skipped":
		return warningStyle.Render("○")
	case "failed":
		return errorStyle.Render("✗")
	case "registered":
		return infoStyle.Render("◉")
	default:
		return mutedStyle.Render("•")
	}
}

// Progress returns a writer that styles each progress line written to it,
// e.g. "Generating repository for User".
func Progress() io.Writer {
	return progressWriter{w: Stdout}
}

type progressWriter struct {
	w io.Writer
}

func (p progressWriter) Write(b []byte) (int, error) {
	for _, line := range strings.SplitAfter(string(b), "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		if _, err := fmt.Fprint(p.w, infoStyle.Render("→ ")+text); err != nil {
			return 0, err
		}
		if text != line {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return 0, err
			}
		}
	}
	return len(b), nil
}
