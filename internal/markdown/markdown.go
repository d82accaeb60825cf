// Package markdown renders note content into styled, width-wrapped display
// lines. It understands a deliberately small dialect: headings, list items,
// fenced code blocks, and inline bold/italic. Rendering is stateless and
// deterministic for a given (text, width) pair.
package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style tags a span for the render engine. The set is closed; the TUI maps
// each tag to a lipgloss style.
type Style int

const (
	StylePlain Style = iota
	StyleHeading
	StyleBold
	StyleItalic
	StyleCode
	StyleListItem
)

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Line is one display row. HeadingLevel is 1-6 for heading lines and 0
// otherwise; styling ignores the level but callers may not.
type Line struct {
	Spans        []Span
	HeadingLevel int
}

// Text flattens a line back to its raw text.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Render converts raw note content into styled lines wrapped to width.
// Words are never split across lines unless a single word exceeds the
// width, in which case it is hard-cut.
func Render(text string, width int) []Line {
	var out []Line
	inCode := false

	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			continue
		}

		if inCode {
			out = append(out, wrap([]Span{{Text: raw, Style: StyleCode}}, 0, width)...)
			continue
		}

		if level := headingLevel(trimmed); level > 0 {
			content := strings.TrimSpace(trimmed[level:])
			out = append(out, wrap([]Span{{Text: content, Style: StyleHeading}}, level, width)...)
			continue
		}

		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			item := "• " + trimmed[2:]
			out = append(out, wrap([]Span{{Text: item, Style: StyleListItem}}, 0, width)...)
			continue
		}

		out = append(out, wrap(parseInline(raw), 0, width)...)
	}

	return out
}

// headingLevel returns 1-6 for "#"-prefixed headings, 0 otherwise. The
// marker must be followed by a space.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// parseInline splits a line into plain, bold, and italic spans. Markers do
// not nest; the leftmost complete marker pair wins.
func parseInline(line string) []Span {
	var spans []Span
	plain := strings.Builder{}

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String(), Style: StylePlain})
			plain.Reset()
		}
	}

	for i := 0; i < len(line); {
		if strings.HasPrefix(line[i:], "**") {
			if end := strings.Index(line[i+2:], "**"); end > 0 {
				flush()
				spans = append(spans, Span{Text: line[i+2 : i+2+end], Style: StyleBold})
				i += end + 4
				continue
			}
		}
		if line[i] == '*' {
			if end := strings.IndexByte(line[i+1:], '*'); end > 0 {
				flush()
				spans = append(spans, Span{Text: line[i+1 : i+1+end], Style: StyleItalic})
				i += end + 2
				continue
			}
		}
		plain.WriteByte(line[i])
		i++
	}
	flush()

	if len(spans) == 0 {
		return []Span{{Text: "", Style: StylePlain}}
	}
	return spans
}

type styledRune struct {
	r     rune
	style Style
}

// wrap word-wraps styled spans into lines no wider than width. A width of
// zero or less disables wrapping.
func wrap(spans []Span, headingLevel, width int) []Line {
	if width <= 0 {
		return []Line{{Spans: spans, HeadingLevel: headingLevel}}
	}

	var runes []styledRune
	for _, sp := range spans {
		for _, r := range sp.Text {
			runes = append(runes, styledRune{r: r, style: sp.Style})
		}
	}

	var (
		lines   []Line
		current []styledRune
		curW    int
	)

	emit := func() {
		lines = append(lines, Line{Spans: mergeRuns(current, spans[0].Style), HeadingLevel: headingLevel})
		current = nil
		curW = 0
	}

	i := 0
	for i < len(runes) {
		// Collect the next run of spaces and the word after it.
		spaceStart := i
		for i < len(runes) && runes[i].r == ' ' {
			i++
		}
		spaces := runes[spaceStart:i]

		wordStart := i
		for i < len(runes) && runes[i].r != ' ' {
			i++
		}
		word := runes[wordStart:i]

		spaceW := runesWidth(spaces)
		wordW := runesWidth(word)

		if len(word) == 0 {
			// Trailing spaces: keep them if they fit.
			if curW+spaceW <= width {
				current = append(current, spaces...)
				curW += spaceW
			}
			continue
		}

		if wordW > width {
			// Hard-cut an oversized word into width-sized chunks.
			if len(current) > 0 {
				emit()
			}
			for _, sr := range word {
				w := runewidth.RuneWidth(sr.r)
				if curW+w > width {
					emit()
				}
				current = append(current, sr)
				curW += w
			}
			continue
		}

		if len(current) > 0 && curW+spaceW+wordW > width {
			emit()
			current = append(current, word...)
			curW = wordW
			continue
		}

		// Keep inter-word spaces, plus original leading indent on the
		// first emitted row.
		if len(current) > 0 || (spaceStart == 0 && len(lines) == 0) {
			current = append(current, spaces...)
			curW += spaceW
		}
		current = append(current, word...)
		curW += wordW
	}

	if len(current) > 0 || len(lines) == 0 {
		emit()
	}
	return lines
}

func runesWidth(rs []styledRune) int {
	w := 0
	for _, sr := range rs {
		w += runewidth.RuneWidth(sr.r)
	}
	return w
}

// mergeRuns folds consecutive same-style runes back into spans.
func mergeRuns(rs []styledRune, fallback Style) []Span {
	if len(rs) == 0 {
		return []Span{{Text: "", Style: fallback}}
	}

	var spans []Span
	cur := strings.Builder{}
	style := rs[0].style
	for _, sr := range rs {
		if sr.style != style {
			spans = append(spans, Span{Text: cur.String(), Style: style})
			cur.Reset()
			style = sr.style
		}
		cur.WriteRune(sr.r)
	}
	spans = append(spans, Span{Text: cur.String(), Style: style})
	return spans
}
