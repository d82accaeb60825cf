// Package editor implements the external-editor round trip: a note is
// serialized to a temp file, the user's editor runs on it in the
// foreground, and the result is parsed back into a draft.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/qnote/qnote/internal/config"
)

// Draft is an in-flight note representation: what the user sees in the
// editor and what comes back from it.
type Draft struct {
	Title   string
	Content string
	Tags    []string
}

// Serialize writes a draft in the editor text format:
//
//	<title line>
//	#tag1 #tag2        (only when tags exist)
//	                   (blank separator before content)
//	<content>
func Serialize(d Draft) string {
	var b strings.Builder
	b.WriteString(d.Title)

	if len(d.Tags) > 0 {
		b.WriteByte('\n')
		for i, t := range d.Tags {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('#')
			b.WriteString(t)
		}
	}

	if d.Content != "" {
		b.WriteString("\n\n")
		b.WriteString(d.Content)
	}

	return b.String()
}

// Parse reads the editor text format back into a draft. ok is false when
// the edit was abandoned: an empty file or a blank title line.
func Parse(text string) (Draft, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Draft{}, false
	}

	lines := strings.Split(trimmed, "\n")
	title := strings.TrimSpace(lines[0])
	if title == "" {
		return Draft{}, false
	}

	d := Draft{Title: title}
	rest := lines[1:]

	// A "#token ..." line directly under the title is the tag line;
	// anything else starts the content.
	if len(rest) > 0 {
		if tagLine := strings.TrimSpace(rest[0]); strings.HasPrefix(tagLine, "#") {
			d.Tags = parseTagLine(tagLine)
			rest = rest[1:]
		}
	}

	// One blank separator between header and content is formatting, not
	// content.
	if len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}

	d.Content = strings.TrimRight(strings.Join(rest, "\n"), "\n")
	return d, true
}

// parseTagLine extracts "#token" words, dropping the marker and
// deduplicating while preserving order.
func parseTagLine(line string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(line) {
		if !strings.HasPrefix(word, "#") {
			continue
		}
		tag := strings.TrimPrefix(word, "#")
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// WriteTempFile serializes the draft to a fresh temp file and returns its
// path. The caller removes it after parsing the result back.
func WriteTempFile(d Draft, secure bool) (string, error) {
	f, err := os.CreateTemp("", "qnote-edit-*.md")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()

	if secure {
		if err := f.Chmod(0o600); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("secure temp file: %w", err)
		}
	}

	if _, err := f.WriteString(Serialize(d)); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}

	return path, nil
}

// ReadTempFile parses the edited file back into a draft. ok follows Parse.
func ReadTempFile(path string) (Draft, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, false, fmt.Errorf("read edited file: %w", err)
	}
	d, ok := Parse(string(data))
	return d, ok, nil
}

// Command builds the foreground editor process for path. The TUI hands it
// to tea.ExecProcess, which releases and restores the terminal around it.
func Command(cfg *config.Config, path string) *exec.Cmd {
	cmd := exec.Command(cfg.EditorCommand(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Cleanup removes the temp file. Best effort: the caller surfaces the
// error as a status message at most.
func Cleanup(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove temp file: %w", err)
	}
	return nil
}
