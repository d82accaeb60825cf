package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/qnote/qnote/internal/markdown"
	"github.com/qnote/qnote/utils"
)

// previewHeaderLines is the title + metadata + blank rows above the
// rendered content.
const previewHeaderLines = 3

func (m NoteListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	frameW, frameH := appStyle.GetFrameSize()
	totalW := m.width - frameW
	contentH := m.height - frameH - 1
	if totalW < 10 || contentH < 1 {
		return ""
	}

	listW := int(float64(totalW) * m.state.Config.UI.SplitRatio)
	if listW < 10 {
		listW = 10
	}
	previewW := totalW - listW - 4
	if previewW < 10 {
		previewW = 10
	}

	list := m.renderList(listW, contentH)
	preview := m.renderPreview(previewW, contentH)

	layout := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Width(listW).Height(contentH).Render(list),
		previewStyle.Height(contentH).Render(preview),
	)

	return appStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, layout, m.renderStatusLine(totalW)),
	)
}

func (m NoteListModel) renderList(width, height int) string {
	if len(m.notes) == 0 {
		return itemStyle.Render("No notes. Press '" + m.state.Config.Keybindings.NewNote + "' to create one.")
	}

	matched := make(map[int]bool, len(m.matches))
	if m.searchVisible() {
		for _, mt := range m.matches {
			matched[mt.index] = true
		}
	}

	// Window the list so the selection stays visible.
	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}
	end := start + height
	if end > len(m.notes) {
		end = len(m.notes)
	}

	var rows []string
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(i, width, matched[i]))
	}
	return strings.Join(rows, "\n")
}

func (m NoteListModel) renderRow(i, width int, matched bool) string {
	n := m.notes[i]

	mark := "  "
	if matched {
		mark = matchMarkStyle.Render("• ")
	}

	title := n.Title
	if title == "" {
		title = "(untitled)"
	}

	summary := ""
	if len(n.Tags) > 0 {
		summary = " [" + strings.Join(n.Tags, ", ") + "]"
	}

	row := title + tagSummaryStyle.Render(summary)
	avail := width - runewidth.StringWidth(mark)
	if avail < 1 {
		avail = 1
	}
	row = truncate.StringWithTail(row, uint(avail), "…")

	if i == m.selected {
		return mark + selectedItemStyle.Render(row)
	}
	return mark + itemStyle.Render(row)
}

func (m NoteListModel) renderPreview(width, height int) string {
	n := m.selectedNote()
	if n == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(n.Title))
	b.WriteByte('\n')
	meta := utils.FormatDate(n.UpdatedAt, utils.DateFull)
	if len(n.Tags) > 0 {
		meta += "  #" + strings.Join(n.Tags, " #")
	}
	b.WriteString(tagSummaryStyle.Render(meta))
	b.WriteString("\n\n")

	lines := markdown.Render(n.Content, width)
	visible := height - previewHeaderLines
	if visible < 1 {
		visible = 1
	}

	scroll := clampScroll(m.previewScroll, len(lines), visible)
	end := scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	for i := scroll; i < end; i++ {
		b.WriteString(renderLine(lines[i]))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderLine(line markdown.Line) string {
	var b strings.Builder
	for _, span := range line.Spans {
		b.WriteString(spanStyles[span.Style].Render(span.Text))
	}
	return b.String()
}

func (m NoteListModel) renderStatusLine(width int) string {
	if m.mode == modeConfirmDelete {
		return confirmStyle.Render(
			fmt.Sprintf("Delete '%s'? (y/enter confirms, any other key cancels)", m.confirmTitle),
		)
	}

	left := fmt.Sprintf("%s  Sort: %s", m.modeLabel(), m.sortMode)

	var right string
	switch {
	case m.mode == modeSearch:
		right = fmt.Sprintf("%s  %d matches", m.searchInput.View(), len(m.matches))
	case m.status != "":
		return statusBarStyle.Render(left+"  ") + statusMessageStyle.Render(m.status)
	case m.committedQuery != "":
		right = fmt.Sprintf("Filter: %s", m.committedQuery)
	}

	line := left
	if right != "" {
		line += "  " + right
	}
	return statusBarStyle.Render(truncate.StringWithTail(line, uint(width), "…"))
}

func (m NoteListModel) modeLabel() string {
	switch m.mode {
	case modeSearch:
		return "SEARCH"
	case modeEditing:
		return "EDITING"
	case modeConfirmDelete:
		return "CONFIRM"
	default:
		return "NORMAL"
	}
}

// searchVisible reports whether match markers should show in the list.
func (m NoteListModel) searchVisible() bool {
	return m.mode == modeSearch && m.searchInput.Value() != ""
}

// clampPreviewScroll bounds a prospective scroll offset against the
// currently rendered preview.
func (m NoteListModel) clampPreviewScroll(want int) int {
	n := m.selectedNote()
	if n == nil {
		return 0
	}

	frameW, frameH := appStyle.GetFrameSize()
	totalW := m.width - frameW
	listW := int(float64(totalW) * m.state.Config.UI.SplitRatio)
	previewW := totalW - listW - 4
	if previewW < 10 {
		previewW = 10
	}
	visible := m.height - frameH - 1 - previewHeaderLines
	if visible < 1 {
		visible = 1
	}

	lines := markdown.Render(n.Content, previewW)
	return clampScroll(want, len(lines), visible)
}

// clampScroll keeps scroll within [0, lineCount-visible].
func clampScroll(scroll, lineCount, visible int) int {
	maxScroll := lineCount - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	if scroll < 0 {
		return 0
	}
	return scroll
}
