// Package notes implements the interactive two-pane note browser.
package notes

import (
	"fmt"
	"os"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/qnote/qnote/internal/editor"
	"github.com/qnote/qnote/internal/fuzzy"
	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/internal/store"
	"github.com/qnote/qnote/utils"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeConfirmDelete
	modeEditing
)

// match pairs a note index with its fuzzy score for the current query.
type match struct {
	index int
	score int
}

// editSession tracks one external-editor round trip. id is zero for a
// brand-new note.
type editSession struct {
	id   int64
	path string
}

type editorFinishedMsg struct {
	err error
}

// NoteListModel is the single owner of all TUI state.
type NoteListModel struct {
	state *state.State
	keys  *listKeyMap

	mode     mode
	notes    []store.Note
	selected int
	sortMode store.SortMode

	searchInput    textinput.Model
	matches        []match
	activeMatch    int
	committedQuery string
	prevSelected   int

	previewScroll int

	status      string
	statusTicks int

	confirmID    int64
	confirmTitle string

	editing *editSession

	width  int
	height int
}

// NewNoteListModel fetches the initial note list and builds the model.
func NewNoteListModel(s *state.State) (*NoteListModel, error) {
	notes, err := s.Store.List(store.ListOptions{Sort: store.SortUpdated})
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "search"
	input.Prompt = "/"
	input.CharLimit = 128

	return &NoteListModel{
		state:       s,
		keys:        newListKeyMap(s.Config.Keybindings),
		notes:       notes,
		sortMode:    store.SortUpdated,
		searchInput: input,
	}, nil
}

func (m NoteListModel) Init() tea.Cmd {
	return nil
}

func (m NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case editorFinishedMsg:
		return m.handleEditorFinished(msg)

	case tea.KeyMsg:
		m.tickStatus()

		switch m.mode {
		case modeSearch:
			return m.handleSearchUpdate(msg)
		case modeConfirmDelete:
			return m.handleConfirmUpdate(msg)
		case modeEditing:
			// The terminal belongs to the editor subprocess; nothing to do
			// until it reports back.
			return m, nil
		default:
			return m.handleNormalUpdate(msg)
		}
	}

	return m, nil
}

func (m NoteListModel) handleNormalUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.moveDown):
		if m.selected < len(m.notes)-1 {
			m.selected++
			m.previewScroll = 0
		}

	case key.Matches(msg, m.keys.moveUp):
		if m.selected > 0 {
			m.selected--
			m.previewScroll = 0
		}

	case key.Matches(msg, m.keys.gotoTop):
		m.selected = 0
		m.previewScroll = 0

	case key.Matches(msg, m.keys.gotoBottom):
		if len(m.notes) > 0 {
			m.selected = len(m.notes) - 1
		}
		m.previewScroll = 0

	case key.Matches(msg, m.keys.scrollPreviewDown):
		m.previewScroll = m.clampPreviewScroll(m.previewScroll + m.state.Config.UI.PreviewScrollStep)

	case key.Matches(msg, m.keys.scrollPreviewUp):
		m.previewScroll = m.clampPreviewScroll(m.previewScroll - m.state.Config.UI.PreviewScrollStep)

	case key.Matches(msg, m.keys.newNote):
		return m.startEditor(nil)

	case key.Matches(msg, m.keys.editNote):
		if n := m.selectedNote(); n != nil {
			return m.startEditor(n)
		}

	case key.Matches(msg, m.keys.deleteNote):
		if n := m.selectedNote(); n != nil {
			m.mode = modeConfirmDelete
			m.confirmID = n.ID
			m.confirmTitle = n.Title
		}

	case key.Matches(msg, m.keys.exportNote):
		if n := m.selectedNote(); n != nil {
			m.exportNote(*n)
		}

	case key.Matches(msg, m.keys.yankNote):
		if n := m.selectedNote(); n != nil {
			if err := clipboard.WriteAll(n.Content); err != nil {
				m.setStatus(fmt.Sprintf("Yank failed: %v", err))
			} else {
				m.setStatus(fmt.Sprintf("Yanked '%s'", n.Title))
			}
		}

	case key.Matches(msg, m.keys.cycleSort):
		m.sortMode = m.sortMode.Next()
		m.refresh()
		m.setStatus(fmt.Sprintf("Sort: %s", m.sortMode))

	case key.Matches(msg, m.keys.enterSearch):
		m.mode = modeSearch
		m.prevSelected = m.selected
		m.matches = nil
		m.activeMatch = 0
		m.searchInput.SetValue("")
		m.searchInput.Focus()

	case key.Matches(msg, m.keys.clearFilter):
		if m.committedQuery != "" {
			m.committedQuery = ""
			m.setStatus("Filter cleared")
		}
	}

	return m, nil
}

func (m NoteListModel) handleSearchUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.mode = modeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.matches = nil
		m.activeMatch = 0
		m.committedQuery = ""
		m.selected = clampIndex(m.prevSelected, len(m.notes))
		return m, nil

	case key.Matches(msg, m.keys.commitSearch):
		if len(m.matches) > 0 {
			m.selected = m.matches[m.activeMatch].index
			m.setStatus(fmt.Sprintf("Found %d notes", len(m.matches)))
		}
		m.committedQuery = m.searchInput.Value()
		m.mode = modeNormal
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.nextMatch):
		m.stepMatch(1)
		return m, nil

	case key.Matches(msg, m.keys.prevMatch):
		m.stepMatch(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.matches = computeMatches(m.notes, m.searchInput.Value())
	if m.activeMatch >= len(m.matches) {
		m.activeMatch = 0
	}
	if len(m.matches) > 0 {
		m.selected = m.matches[m.activeMatch].index
		m.previewScroll = 0
	}
	return m, cmd
}

func (m NoteListModel) handleConfirmUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.confirm) {
		if err := m.state.Store.Delete(m.confirmID); err != nil {
			m.setStatus(fmt.Sprintf("Delete failed: %v", err))
		} else {
			m.setStatus(fmt.Sprintf("Deleted '%s'", m.confirmTitle))
			m.refresh()
		}
	}

	// Any other key cancels without touching the store.
	m.mode = modeNormal
	m.confirmID = 0
	m.confirmTitle = ""
	return m, nil
}

// startEditor serializes the draft, hands the terminal to the external
// editor, and resumes through editorFinishedMsg.
func (m NoteListModel) startEditor(n *store.Note) (tea.Model, tea.Cmd) {
	var draft editor.Draft
	var id int64
	if n != nil {
		draft = editor.Draft{Title: n.Title, Content: n.Content, Tags: n.Tags}
		id = n.ID
	}

	path, err := editor.WriteTempFile(draft, m.state.Config.Editor.SecureTempFiles)
	if err != nil {
		m.setStatus(fmt.Sprintf("Editor failed: %v", err))
		return m, nil
	}

	m.mode = modeEditing
	m.editing = &editSession{id: id, path: path}

	cmd := editor.Command(m.state.Config, path)
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m NoteListModel) handleEditorFinished(msg editorFinishedMsg) (tea.Model, tea.Cmd) {
	session := m.editing
	m.editing = nil
	m.mode = modeNormal
	if session == nil {
		return m, nil
	}

	if msg.err != nil {
		editor.Cleanup(session.path)
		m.setStatus(fmt.Sprintf("Editor failed: %v", msg.err))
		return m, nil
	}

	draft, ok, err := editor.ReadTempFile(session.path)
	cleanupErr := editor.Cleanup(session.path)
	if err != nil {
		m.setStatus(fmt.Sprintf("Edit failed: %v", err))
		return m, nil
	}
	if !ok {
		m.setStatus("Cancelled")
		return m, nil
	}

	if session.id == 0 {
		created, err := m.state.Store.Create(draft.Title, draft.Content, draft.Tags)
		if err != nil {
			m.setStatus(fmt.Sprintf("Create failed: %v", err))
			return m, nil
		}
		m.refresh()
		m.selectByID(created.ID)
		m.setStatus("Note created")
	} else {
		if err := m.state.Store.Update(session.id, draft.Title, draft.Content, draft.Tags); err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", err))
			return m, nil
		}
		m.refresh()
		m.selectByID(session.id)
		m.setStatus("Note saved")
	}

	if cleanupErr != nil {
		m.setStatus(fmt.Sprintf("Temp file not removed: %v", cleanupErr))
	}
	return m, nil
}

// refresh re-fetches the note list from the store. On failure the prior
// snapshot stays in place and the error becomes a status message.
func (m *NoteListModel) refresh() {
	notes, err := m.state.Store.List(store.ListOptions{Sort: m.sortMode})
	if err != nil {
		m.setStatus(fmt.Sprintf("Refresh failed: %v", err))
		return
	}
	m.notes = notes
	m.selected = clampIndex(m.selected, len(m.notes))
	m.previewScroll = 0

	// Matches derive from (notes, query) only; recompute whenever the
	// snapshot changes.
	if m.mode == modeSearch {
		m.matches = computeMatches(m.notes, m.searchInput.Value())
		if m.activeMatch >= len(m.matches) {
			m.activeMatch = 0
		}
	}
}

func (m *NoteListModel) selectByID(id int64) {
	for i, n := range m.notes {
		if n.ID == id {
			m.selected = i
			return
		}
	}
	m.selected = 0
}

func (m *NoteListModel) stepMatch(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.activeMatch = (m.activeMatch + delta + len(m.matches)) % len(m.matches)
	m.selected = m.matches[m.activeMatch].index
	m.previewScroll = 0
}

func (m NoteListModel) selectedNote() *store.Note {
	if len(m.notes) == 0 || m.selected < 0 || m.selected >= len(m.notes) {
		return nil
	}
	return &m.notes[m.selected]
}

func (m *NoteListModel) exportNote(n store.Note) {
	path := utils.ExportPath(n.Title)
	content := editor.Serialize(editor.Draft{Title: n.Title, Content: n.Content, Tags: n.Tags})
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		m.setStatus(fmt.Sprintf("Export failed: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("Exported to %s", path))
}

func (m *NoteListModel) setStatus(msg string) {
	m.status = msg
	m.statusTicks = m.state.Config.UI.MessageTicks
}

func (m *NoteListModel) tickStatus() {
	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}
}

// computeMatches scores every note against the query and keeps positive
// scores, ordered by score descending then note index ascending. It is a
// pure function of its inputs.
func computeMatches(notes []store.Note, query string) []match {
	var out []match
	for i, n := range notes {
		if s := fuzzy.ScoreNote(query, n.Title, n.Tags, n.Content); s > 0 {
			out = append(out, match{index: i, score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].index < out[j].index
	})
	return out
}

func clampIndex(i, length int) int {
	if length == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}

// Run starts the TUI and blocks until the user quits.
func Run(s *state.State) error {
	m, err := NewNoteListModel(s)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
