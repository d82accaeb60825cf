package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qnote/qnote/internal/config"
	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/internal/store"
)

func newTestModel(t *testing.T, titles ...string) NoteListModel {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "notes.db"), store.Pragmas{})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	for _, title := range titles {
		if _, err := s.Create(title, "content of "+title, nil); err != nil {
			t.Fatalf("failed to create note %q: %v", title, err)
		}
	}

	st := &state.State{Config: config.Default(), Store: s}
	m, err := NewNoteListModel(st)
	if err != nil {
		t.Fatalf("failed to build model: %v", err)
	}

	// Title order is deterministic; updated_at ties within one second are
	// not.
	m.sortMode = store.SortTitle
	m.refresh()
	return *m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m NoteListModel, msgs ...tea.Msg) NoteListModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(NoteListModel)
		if !ok {
			t.Fatalf("unexpected model type %T", updated)
		}
		m = next
	}
	return m
}

func TestSelectionClampsAtEdges(t *testing.T) {
	m := newTestModel(t, "alpha", "beta", "gamma")

	m = press(t, m, runeKey('k'))
	if m.selected != 0 {
		t.Fatalf("expected selection to stay at 0, got %d", m.selected)
	}

	m = press(t, m, runeKey('j'), runeKey('j'))
	if m.selected != 2 {
		t.Fatalf("expected selection at 2, got %d", m.selected)
	}

	m = press(t, m, runeKey('j'))
	if m.selected != 2 {
		t.Fatalf("expected selection to stay at 2, got %d", m.selected)
	}
}

func TestGotoTopAndBottom(t *testing.T) {
	m := newTestModel(t, "alpha", "beta", "gamma")

	m = press(t, m, runeKey('G'))
	if m.selected != 2 {
		t.Fatalf("expected selection at bottom, got %d", m.selected)
	}

	m = press(t, m, runeKey('g'))
	if m.selected != 0 {
		t.Fatalf("expected selection at top, got %d", m.selected)
	}
}

func TestMovementOnEmptyList(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runeKey('j'), runeKey('k'), runeKey('G'), runeKey('g'))
	if m.selected != 0 {
		t.Fatalf("expected selection pinned at 0, got %d", m.selected)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(t, "alpha", "beta")

	m = press(t, m, runeKey('d'))
	if m.mode != modeConfirmDelete {
		t.Fatalf("expected confirm mode, got %v", m.mode)
	}
	if m.confirmTitle != "alpha" {
		t.Fatalf("expected alpha pending deletion, got %q", m.confirmTitle)
	}

	id := m.confirmID
	m = press(t, m, runeKey('y'))
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after confirm, got %v", m.mode)
	}
	if len(m.notes) != 1 {
		t.Fatalf("expected 1 note left, got %d", len(m.notes))
	}

	gone, err := m.state.Store.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected note to be deleted")
	}
}

func TestDeleteCancelsOnAnyOtherKey(t *testing.T) {
	m := newTestModel(t, "alpha")

	m = press(t, m, runeKey('d'), runeKey('n'))
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after cancel, got %v", m.mode)
	}
	if len(m.notes) != 1 {
		t.Fatalf("expected note to survive cancel, got %d notes", len(m.notes))
	}
	if m.confirmID != 0 {
		t.Fatalf("expected pending delete to be cleared")
	}
}

func TestSearchSelectsBestMatch(t *testing.T) {
	m := newTestModel(t, "alpha", "beta", "gamma")

	m = press(t, m, runeKey('/'))
	if m.mode != modeSearch {
		t.Fatalf("expected search mode, got %v", m.mode)
	}
	if len(m.matches) != 0 {
		t.Fatalf("expected no matches before typing, got %d", len(m.matches))
	}

	m = press(t, m, runeKey('b'), runeKey('e'), runeKey('t'))
	if len(m.matches) == 0 {
		t.Fatalf("expected matches for 'bet'")
	}
	if m.notes[m.selected].Title != "beta" {
		t.Fatalf("expected beta selected, got %q", m.notes[m.selected].Title)
	}
}

func TestSearchEscRestoresSelection(t *testing.T) {
	m := newTestModel(t, "alpha", "beta", "gamma")

	m = press(t, m, runeKey('j'))
	if m.selected != 1 {
		t.Fatalf("expected selection at 1, got %d", m.selected)
	}

	m = press(t, m, runeKey('/'), runeKey('g'), runeKey('a'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after cancel, got %v", m.mode)
	}
	if m.selected != 1 {
		t.Fatalf("expected selection restored to 1, got %d", m.selected)
	}
	if m.committedQuery != "" {
		t.Fatalf("expected no committed query after cancel, got %q", m.committedQuery)
	}
	if len(m.matches) != 0 {
		t.Fatalf("expected matches cleared after cancel")
	}
}

func TestSearchCommitKeepsSelectionAndQuery(t *testing.T) {
	m := newTestModel(t, "alpha", "beta", "gamma")

	m = press(t, m, runeKey('/'), runeKey('g'), runeKey('a'), runeKey('m'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after commit, got %v", m.mode)
	}
	if m.committedQuery != "gam" {
		t.Fatalf("expected committed query, got %q", m.committedQuery)
	}
	if m.notes[m.selected].Title != "gamma" {
		t.Fatalf("expected gamma selected, got %q", m.notes[m.selected].Title)
	}
	if !strings.HasPrefix(m.status, "Found ") {
		t.Fatalf("expected found status, got %q", m.status)
	}
}

func TestSearchClearFilter(t *testing.T) {
	m := newTestModel(t, "alpha", "beta")

	m = press(t, m, runeKey('/'), runeKey('b'), tea.KeyMsg{Type: tea.KeyEnter})
	if m.committedQuery != "b" {
		t.Fatalf("expected committed query, got %q", m.committedQuery)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.committedQuery != "" {
		t.Fatalf("expected filter cleared, got %q", m.committedQuery)
	}
}

func TestCycleSort(t *testing.T) {
	m := newTestModel(t, "zebra", "apple")
	m.sortMode = store.SortUpdated

	m = press(t, m, runeKey('s'))
	if m.sortMode != store.SortTitle {
		t.Fatalf("expected title sort, got %v", m.sortMode)
	}
	if m.notes[0].Title != "apple" {
		t.Fatalf("expected apple first under title sort, got %q", m.notes[0].Title)
	}
	if m.status != "Sort: Title" {
		t.Fatalf("unexpected status %q", m.status)
	}

	m = press(t, m, runeKey('s'))
	if m.sortMode != store.SortCreated {
		t.Fatalf("expected created sort, got %v", m.sortMode)
	}
	m = press(t, m, runeKey('s'))
	if m.sortMode != store.SortUpdated {
		t.Fatalf("expected updated sort, got %v", m.sortMode)
	}
}

func TestStatusExpiresAfterTicks(t *testing.T) {
	m := newTestModel(t, "alpha")
	m.setStatus("hello")

	ticks := m.state.Config.UI.MessageTicks
	for i := 0; i < ticks; i++ {
		if m.status == "" {
			t.Fatalf("status expired %d keypresses early", ticks-i)
		}
		m = press(t, m, runeKey('g'))
	}
	if m.status != "" {
		t.Fatalf("expected status to expire, still %q", m.status)
	}
}

func TestEditorFinishedCreatesNote(t *testing.T) {
	m := newTestModel(t)

	path := filepath.Join(t.TempDir(), "draft.md")
	if err := os.WriteFile(path, []byte("fresh note\n#inbox\n\nhello"), 0o644); err != nil {
		t.Fatalf("failed to write draft: %v", err)
	}

	m.mode = modeEditing
	m.editing = &editSession{id: 0, path: path}
	m = press(t, m, editorFinishedMsg{})

	if m.mode != modeNormal {
		t.Fatalf("expected normal mode, got %v", m.mode)
	}
	if m.status != "Note created" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if len(m.notes) != 1 || m.notes[0].Title != "fresh note" {
		t.Fatalf("expected the new note in the list, got %+v", m.notes)
	}
	if len(m.notes[0].Tags) != 1 || m.notes[0].Tags[0] != "inbox" {
		t.Fatalf("expected inbox tag, got %v", m.notes[0].Tags)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be removed")
	}
}

func TestEditorFinishedUpdatesNote(t *testing.T) {
	m := newTestModel(t, "old title")
	id := m.notes[0].ID

	path := filepath.Join(t.TempDir(), "draft.md")
	if err := os.WriteFile(path, []byte("new title\n\nnew body"), 0o644); err != nil {
		t.Fatalf("failed to write draft: %v", err)
	}

	m.mode = modeEditing
	m.editing = &editSession{id: id, path: path}
	m = press(t, m, editorFinishedMsg{})

	if m.status != "Note saved" {
		t.Fatalf("unexpected status %q", m.status)
	}

	got, err := m.state.Store.Get(id)
	if err != nil || got == nil {
		t.Fatalf("failed to reload note: %v", err)
	}
	if got.Title != "new title" || got.Content != "new body" {
		t.Fatalf("expected updated fields, got %+v", got)
	}
}

func TestEditorAbandonLeavesStoreAlone(t *testing.T) {
	m := newTestModel(t, "keep me")
	id := m.notes[0].ID

	path := filepath.Join(t.TempDir(), "draft.md")
	if err := os.WriteFile(path, []byte("   \n\n"), 0o644); err != nil {
		t.Fatalf("failed to write draft: %v", err)
	}

	m.mode = modeEditing
	m.editing = &editSession{id: id, path: path}
	m = press(t, m, editorFinishedMsg{})

	if m.status != "Cancelled" {
		t.Fatalf("unexpected status %q", m.status)
	}

	got, err := m.state.Store.Get(id)
	if err != nil || got == nil {
		t.Fatalf("failed to reload note: %v", err)
	}
	if got.Title != "keep me" {
		t.Fatalf("expected note untouched, got %+v", got)
	}
}

func TestComputeMatchesOrdersByScore(t *testing.T) {
	notes := []store.Note{
		{Title: "unrelated", Content: "nothing here"},
		{Title: "go tips", Content: ""},
		{Title: "a very long note about go and other topics", Content: ""},
	}

	matches := computeMatches(notes, "go")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].index != 1 {
		t.Fatalf("expected the shorter title to rank first, got index %d", matches[0].index)
	}
	if matches[0].score <= matches[1].score {
		t.Fatalf("expected descending scores, got %d then %d", matches[0].score, matches[1].score)
	}
}

func TestComputeMatchesTieBreaksByIndex(t *testing.T) {
	notes := []store.Note{
		{Title: "same", Content: ""},
		{Title: "same", Content: ""},
	}

	matches := computeMatches(notes, "same")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].index != 0 || matches[1].index != 1 {
		t.Fatalf("expected stable index order, got %d then %d", matches[0].index, matches[1].index)
	}
}

func TestClampIndex(t *testing.T) {
	cases := []struct {
		i, length, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{-1, 3, 0},
		{1, 3, 1},
		{3, 3, 2},
		{10, 3, 2},
	}
	for _, tc := range cases {
		if got := clampIndex(tc.i, tc.length); got != tc.want {
			t.Fatalf("clampIndex(%d, %d): expected %d, got %d", tc.i, tc.length, tc.want, got)
		}
	}
}
