package fuzzy

import "testing"

func TestScoreEmptyQueryMatchesEverything(t *testing.T) {
	if got := Score("", "anything"); got != emptyQueryScore {
		t.Fatalf("expected empty query score %d, got %d", emptyQueryScore, got)
	}
	if got := Score("", ""); got != emptyQueryScore {
		t.Fatalf("expected empty query to match empty candidate, got %d", got)
	}
}

func TestScoreEmptyCandidate(t *testing.T) {
	if got := Score("a", ""); got != 0 {
		t.Fatalf("expected no match against empty candidate, got %d", got)
	}
}

func TestScoreRequiresOrderedSubsequence(t *testing.T) {
	if got := Score("abc", "a big cat"); got == 0 {
		t.Fatalf("expected subsequence to match")
	}
	if got := Score("cba", "a big cat"); got != 0 {
		t.Fatalf("expected out-of-order runes not to match, got %d", got)
	}
	if got := Score("xyz", "a big cat"); got != 0 {
		t.Fatalf("expected absent runes not to match, got %d", got)
	}
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	if Score("README", "readme file") == 0 {
		t.Fatalf("expected case-insensitive match")
	}
	if Score("readme", "README FILE") == 0 {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestScoreSubstringBeatsScattered(t *testing.T) {
	substr := Score("note", "my notes")
	scattered := Score("note", "new order tea evening")
	if scattered == 0 {
		t.Fatalf("expected scattered subsequence to match")
	}
	if substr <= scattered {
		t.Fatalf("expected substring score %d to beat scattered score %d", substr, scattered)
	}
}

func TestScoreShorterSubstringCandidateRanksHigher(t *testing.T) {
	short := Score("go", "go tips")
	long := Score("go", "go tips and a great many other things besides")
	if short <= long {
		t.Fatalf("expected shorter candidate to rank higher: %d vs %d", short, long)
	}
}

func TestScoreContiguousBeatsSpread(t *testing.T) {
	// Neither candidate contains "abc" as a substring, so both take the
	// subsequence path; the tighter run should win.
	tight := Score("abc", "xabxcx")
	spread := Score("abc", "xaxxbxxcx")
	if tight == 0 || spread == 0 {
		t.Fatalf("expected both candidates to match")
	}
	if tight <= spread {
		t.Fatalf("expected tighter match %d to beat spread match %d", tight, spread)
	}
}

func TestScoreWordBoundaryBonus(t *testing.T) {
	boundary := Score("wx", "word x-ray")
	interior := Score("wx", "awwacdewaaxe")
	if boundary == 0 || interior == 0 {
		t.Fatalf("expected both candidates to match")
	}
	if boundary <= interior {
		t.Fatalf("expected boundary match %d to beat interior match %d", boundary, interior)
	}
}

func TestScoreDeterministic(t *testing.T) {
	first := Score("qnote", "quick notes about everything")
	for i := 0; i < 10; i++ {
		if got := Score("qnote", "quick notes about everything"); got != first {
			t.Fatalf("expected stable score %d, got %d", first, got)
		}
	}
}

func TestScoreNoteSearchesTitleTagsAndContent(t *testing.T) {
	if ScoreNote("roadmap", "meeting", []string{"work"}, "discuss roadmap") == 0 {
		t.Fatalf("expected content to be searchable")
	}
	if ScoreNote("work", "meeting", []string{"work"}, "") == 0 {
		t.Fatalf("expected tags to be searchable")
	}
	if ScoreNote("meeting", "meeting", nil, "") == 0 {
		t.Fatalf("expected title to be searchable")
	}
	if ScoreNote("absent", "meeting", []string{"work"}, "discuss roadmap") != 0 {
		t.Fatalf("expected no match for absent query")
	}
}
