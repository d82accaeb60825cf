package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Date formats used across CLI output.
const (
	DateShort = "Jan 02"
	DateFull  = "2006-01-02 15:04"
	DateOnly  = "2006-01-02"
)

// TerminalWidth returns the current terminal width, or fallback when
// stdout is not a terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// RenderMarkdown renders note content for CLI display with glamour.
// Falls back to the raw content when rendering fails.
func RenderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// ParseTags splits a comma-separated tag flag into clean tag names.
func ParseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SanitizeFilename maps a note title to a filesystem-safe name: every
// non-alphanumeric rune becomes an underscore.
func SanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "note"
	}
	return b.String()
}

// ExportPath returns "<sanitized>.md", appending -2, -3, ... while the
// name collides with an existing file.
func ExportPath(title string) string {
	base := SanitizeFilename(title)
	path := base + ".md"
	for i := 2; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = fmt.Sprintf("%s-%d.md", base, i)
	}
}

// FormatDate renders a timestamp in local time with the given layout.
func FormatDate(t time.Time, layout string) string {
	return t.Local().Format(layout)
}
