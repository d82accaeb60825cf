package notes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/qnote/qnote/internal/markdown"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	listStyle = lipgloss.NewStyle().
			MarginRight(1)

	previewStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#334455"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224")).
				Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))

	tagSummaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#667788"))

	matchMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#99AABB"))

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF"))

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F55")).
			Bold(true)

	spanStyles = map[markdown.Style]lipgloss.Style{
		markdown.StylePlain:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CCC")),
		markdown.StyleHeading:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0AF")).Bold(true),
		markdown.StyleBold:     lipgloss.NewStyle().Bold(true),
		markdown.StyleItalic:   lipgloss.NewStyle().Italic(true),
		markdown.StyleCode:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EB6")),
		markdown.StyleListItem: lipgloss.NewStyle().Foreground(lipgloss.Color("#CCC")),
	}
)
