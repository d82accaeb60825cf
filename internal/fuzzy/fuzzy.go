// Package fuzzy scores query strings against candidates for interactive
// filtering. Scoring is deterministic: identical inputs always produce
// identical scores, so results sort stably.
package fuzzy

import (
	"strings"
	"unicode"
)

// Scoring weights. Only relative order matters: contiguous runs and word
// boundary hits rank above scattered matches, substrings above both.
const (
	matchBase       = 10
	contiguousBonus = 5
	boundaryBonus   = 20
	substringBase   = 1000
	emptyQueryScore = 1
)

// Score rates how well query matches candidate. Zero means no match: every
// query rune (case-insensitive) must appear in candidate in order. An empty
// query matches everything with a neutral score.
func Score(query, candidate string) int {
	if query == "" {
		return emptyQueryScore
	}
	if candidate == "" {
		return 0
	}

	query = strings.ToLower(query)
	lower := strings.ToLower(candidate)

	// Substring matches beat any scattered subsequence; shorter candidates
	// rank higher.
	if strings.Contains(lower, query) {
		score := substringBase - len(lower)
		if score < 1 {
			score = 1
		}
		return score
	}

	q := []rune(query)
	c := []rune(lower)
	qi := 0
	score := 0
	consecutive := 0

	for ci := 0; ci < len(c) && qi < len(q); ci++ {
		if c[ci] != q[qi] {
			consecutive = 0
			continue
		}
		score += matchBase + consecutive*contiguousBonus
		if ci == 0 || !unicode.IsLetter(c[ci-1]) {
			score += boundaryBonus
		}
		consecutive++
		qi++
	}

	if qi < len(q) {
		return 0
	}

	// Fewer unmatched candidate runes rank higher.
	score -= len(c) - len(q)
	if score < 1 {
		score = 1
	}
	return score
}

// ScoreNote rates a query against a note's searchable text: title, tags,
// and content joined with spaces, mirroring what the search pane displays.
func ScoreNote(query, title string, tags []string, content string) int {
	var b strings.Builder
	b.WriteString(title)
	for _, t := range tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	b.WriteByte(' ')
	b.WriteString(content)
	return Score(query, b.String())
}
