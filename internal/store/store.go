// Package store implements the SQLite-backed note store.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Note is a single persisted note. Tags keep their insertion order.
type Note struct {
	ID        int64
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SortMode selects the ordering of List results.
type SortMode int

const (
	SortUpdated SortMode = iota
	SortTitle
	SortCreated
)

// Next cycles Updated -> Title -> Created -> Updated.
func (s SortMode) Next() SortMode {
	switch s {
	case SortUpdated:
		return SortTitle
	case SortTitle:
		return SortCreated
	default:
		return SortUpdated
	}
}

func (s SortMode) String() string {
	switch s {
	case SortTitle:
		return "Title"
	case SortCreated:
		return "Created"
	default:
		return "Updated"
	}
}

// ParseSortMode maps a CLI flag value to a SortMode.
func ParseSortMode(name string) (SortMode, error) {
	switch strings.ToLower(name) {
	case "updated":
		return SortUpdated, nil
	case "title":
		return SortTitle, nil
	case "created":
		return SortCreated, nil
	default:
		return SortUpdated, fmt.Errorf("unknown sort mode %q (want updated, title, or created)", name)
	}
}

// ListOptions narrows and orders List results.
type ListOptions struct {
	Sort  SortMode
	Tag   string
	Limit int
	Since time.Time
}

// Stats summarizes the whole store for the stats command.
type Stats struct {
	TotalNotes int
	UniqueTags int
	TotalBytes int
	Oldest     *Note
	Newest     *Note
}

// Pragmas tune the underlying SQLite connection. Zero values leave the
// driver defaults in place.
type Pragmas struct {
	WAL         bool
	CacheSizeKB int
	Synchronous string
}

// Store wraps a single SQLite database holding all notes.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string, pragmas Pragmas) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.applyPragmas(pragmas); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) applyPragmas(p Pragmas) error {
	if p.WAL {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			return err
		}
	}
	if p.CacheSizeKB > 0 {
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA cache_size=-%d", p.CacheSizeKB)); err != nil {
			return err
		}
	}
	if p.Synchronous != "" {
		if _, err := s.db.Exec("PRAGMA synchronous=" + p.Synchronous); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    tags TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at DESC);
`
	_, err := s.db.Exec(schema)
	return err
}

// Create inserts a new note and returns it with its assigned ID.
func (s *Store) Create(title, content string, tags []string) (Note, error) {
	now := time.Now().UTC()
	tagsJSON, err := json.Marshal(normalizeTags(tags))
	if err != nil {
		return Note{}, fmt.Errorf("encode tags: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO notes (title, content, tags, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		title, content, string(tagsJSON), now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	return Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Tags:      normalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Get returns the note with the given ID, or nil when it does not exist.
func (s *Store) Get(id int64) (*Note, error) {
	row := s.db.QueryRow(
		`SELECT id, title, content, tags, created_at, updated_at FROM notes WHERE id = ?`, id,
	)

	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	return &n, nil
}

// Update replaces title, content, and tags of an existing note and bumps
// its updated_at timestamp.
func (s *Store) Update(id int64, title, content string, tags []string) error {
	tagsJSON, err := json.Marshal(normalizeTags(tags))
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE notes SET title = ?, content = ?, tags = ?, updated_at = ? WHERE id = ?`,
		title, content, string(tagsJSON), time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("update note %d: %w", id, err)
	}
	if count, err := res.RowsAffected(); err == nil && count == 0 {
		return fmt.Errorf("note %d not found", id)
	}
	return nil
}

// Delete removes a note permanently.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return nil
}

// List returns notes ordered by the requested sort mode, optionally
// filtered by tag, creation date, and limit.
func (s *Store) List(opts ListOptions) ([]Note, error) {
	order := "updated_at DESC"
	switch opts.Sort {
	case SortTitle:
		order = "title COLLATE NOCASE ASC"
	case SortCreated:
		order = "created_at DESC"
	}

	rows, err := s.db.Query(
		`SELECT id, title, content, tags, created_at, updated_at FROM notes ORDER BY ` + order,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		if opts.Tag != "" && !hasTag(n.Tags, opts.Tag) {
			continue
		}
		if !opts.Since.IsZero() && n.CreatedAt.Before(opts.Since) {
			continue
		}
		notes = append(notes, n)
		if opts.Limit > 0 && len(notes) == opts.Limit {
			break
		}
	}
	return notes, rows.Err()
}

// Search finds notes whose title, content, or tags contain the query,
// case-insensitively, newest first.
func (s *Store) Search(query string) ([]Note, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.Query(
		`SELECT id, title, content, tags, created_at, updated_at
         FROM notes
         WHERE title LIKE ? OR content LIKE ? OR tags LIKE ?
         ORDER BY updated_at DESC`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("search notes: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// TagCount pairs a tag with the number of notes carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// Tags aggregates tag usage across all notes, ordered by count descending
// then tag name.
func (s *Store) Tags() ([]TagCount, error) {
	notes, err := s.List(ListOptions{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, n := range notes {
		for _, t := range n.Tags {
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out, nil
}

// CollectStats walks all notes once and summarizes them.
func (s *Store) CollectStats() (Stats, error) {
	notes, err := s.List(ListOptions{})
	if err != nil {
		return Stats{}, err
	}
	if len(notes) == 0 {
		return Stats{}, nil
	}

	stats := Stats{TotalNotes: len(notes)}
	tagSet := make(map[string]struct{})
	oldest, newest := notes[0], notes[0]
	for i, n := range notes {
		stats.TotalBytes += len(n.Title) + len(n.Content)
		for _, t := range n.Tags {
			tagSet[t] = struct{}{}
		}
		if n.CreatedAt.Before(oldest.CreatedAt) {
			oldest = notes[i]
		}
		if n.UpdatedAt.After(newest.UpdatedAt) {
			newest = notes[i]
		}
	}
	stats.UniqueTags = len(tagSet)
	stats.Oldest = &oldest
	stats.Newest = &newest
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (Note, error) {
	var (
		n        Note
		tagsJSON string
		created  string
		updated  string
	)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &tagsJSON, &created, &updated); err != nil {
		return Note{}, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &n.Tags); err != nil {
		n.Tags = nil
	}
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		n.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updated); err == nil {
		n.UpdatedAt = t
	}
	return n, nil
}

// normalizeTags drops empties and duplicates while preserving first-seen
// order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
