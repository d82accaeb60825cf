// Package resolve maps a CLI id-or-title argument to a concrete note.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qnote/qnote/internal/fzf"
	"github.com/qnote/qnote/internal/store"
)

// Note resolves an id-or-title argument. A numeric argument is treated as
// an ID; anything else matches case-insensitively against titles. An
// ambiguous pattern lists the candidates and returns an error.
func Note(s *store.Store, arg string) (int64, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		n, err := s.Get(id)
		if err != nil {
			return 0, err
		}
		if n == nil {
			return 0, fmt.Errorf("note with ID %d not found", id)
		}
		return id, nil
	}

	notes, err := s.List(store.ListOptions{})
	if err != nil {
		return 0, err
	}

	needle := strings.ToLower(arg)
	var matches []store.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), needle) {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("no notes found matching %q", arg)
	case 1:
		return matches[0].ID, nil
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "multiple notes match %q:\n", arg)
		for _, n := range matches {
			fmt.Fprintf(&b, "  [%d] %s\n", n.ID, n.Title)
		}
		b.WriteString("use a more specific pattern or the exact ID")
		return 0, fmt.Errorf("%s", b.String())
	}
}

// NoteOrPick resolves the first positional argument, falling back to an
// interactive fuzzy picker when no argument was given.
func NoteOrPick(s *store.Store, args []string, header string) (int64, error) {
	if len(args) > 0 {
		return Note(s, args[0])
	}
	return fzf.PickNote(s, header)
}
