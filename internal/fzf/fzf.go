// Package fzf provides an interactive note picker for CLI commands that
// were invoked without an id or title argument.
package fzf

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/qnote/qnote/internal/store"
)

// PickNote opens a fuzzy finder over all notes and returns the selected
// note's ID.
func PickNote(s *store.Store, header string) (int64, error) {
	notes, err := s.List(store.ListOptions{})
	if err != nil {
		return 0, fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		return 0, fmt.Errorf("no notes to pick from")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return renderPreview(notes[i], w)
		}),
	}
	if header != "" {
		options = append(options, fuzzyfinder.WithHeader(header))
	}

	idx, err := fuzzyfinder.Find(notes, func(i int) string {
		return displayLabel(notes[i])
	}, options...)
	if err != nil {
		return 0, fmt.Errorf("pick note: %w", err)
	}

	return notes[idx].ID, nil
}

func displayLabel(n store.Note) string {
	if len(n.Tags) == 0 {
		return fmt.Sprintf("%s [No tags]", n.Title)
	}
	return fmt.Sprintf("%s [Tags: %s]", n.Title, strings.Join(n.Tags, ", "))
}

func renderPreview(n store.Note, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return n.Content
	}

	rendered, err := r.Render("# " + n.Title + "\n\n" + n.Content)
	if err != nil {
		return n.Content
	}
	return rendered
}
