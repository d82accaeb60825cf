package notes

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/qnote/qnote/internal/config"
)

type listKeyMap struct {
	quit              key.Binding
	newNote           key.Binding
	editNote          key.Binding
	deleteNote        key.Binding
	enterSearch       key.Binding
	exportNote        key.Binding
	yankNote          key.Binding
	cycleSort         key.Binding
	gotoTop           key.Binding
	gotoBottom        key.Binding
	moveDown          key.Binding
	moveUp            key.Binding
	scrollPreviewDown key.Binding
	scrollPreviewUp   key.Binding
	clearFilter       key.Binding
	confirm           key.Binding
	cancel            key.Binding
	nextMatch         key.Binding
	prevMatch         key.Binding
	commitSearch      key.Binding
}

func newListKeyMap(kb config.KeybindingsConfig) *listKeyMap {
	return &listKeyMap{
		quit: key.NewBinding(
			key.WithKeys(kb.Quit, "ctrl+c"),
			key.WithHelp(kb.Quit, "quit"),
		),
		newNote: key.NewBinding(
			key.WithKeys(kb.NewNote),
			key.WithHelp(kb.NewNote, "new note"),
		),
		editNote: key.NewBinding(
			key.WithKeys(kb.Edit, "enter"),
			key.WithHelp(kb.Edit, "edit"),
		),
		deleteNote: key.NewBinding(
			key.WithKeys(kb.Delete),
			key.WithHelp(kb.Delete, "delete"),
		),
		enterSearch: key.NewBinding(
			key.WithKeys(kb.Search),
			key.WithHelp(kb.Search, "search"),
		),
		exportNote: key.NewBinding(
			key.WithKeys(kb.Export),
			key.WithHelp(kb.Export, "export"),
		),
		yankNote: key.NewBinding(
			key.WithKeys(kb.Yank),
			key.WithHelp(kb.Yank, "yank"),
		),
		cycleSort: key.NewBinding(
			key.WithKeys(kb.Sort),
			key.WithHelp(kb.Sort, "sort"),
		),
		gotoTop: key.NewBinding(
			key.WithKeys(kb.GotoTop),
			key.WithHelp(kb.GotoTop, "top"),
		),
		gotoBottom: key.NewBinding(
			key.WithKeys(kb.GotoBottom),
			key.WithHelp(kb.GotoBottom, "bottom"),
		),
		moveDown: key.NewBinding(
			key.WithKeys(kb.MoveDown, "down"),
			key.WithHelp(kb.MoveDown, "down"),
		),
		moveUp: key.NewBinding(
			key.WithKeys(kb.MoveUp, "up"),
			key.WithHelp(kb.MoveUp, "up"),
		),
		scrollPreviewDown: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("^j", "scroll preview down"),
		),
		scrollPreviewUp: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("^k", "scroll preview up"),
		),
		clearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/↵", "confirm"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		nextMatch: key.NewBinding(
			key.WithKeys("ctrl+n", "ctrl+j", "down"),
			key.WithHelp("^n", "next match"),
		),
		prevMatch: key.NewBinding(
			key.WithKeys("ctrl+p", "ctrl+k", "up"),
			key.WithHelp("^p", "prev match"),
		),
		commitSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "accept"),
		),
	}
}
