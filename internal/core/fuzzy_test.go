package core

import "testing"

func TestScoreExactAndEmpty(t *testing.T) {
	for _, s := range []string{"85n", "STANDUP", "  lunch  ", "A — B"} {
		if got := Score(s, s); got != 100 {
			t.Fatalf("Score(%q, %q) = %d, want 100", s, s, got)
		}
	}
	if got := Score("", "anything"); got != 0 {
		t.Fatalf("empty input scored %d", got)
	}
	if got := Score("anything", ""); got != 0 {
		t.Fatalf("empty target scored %d", got)
	}
	if got := Score("   ", "x"); got != 0 {
		t.Fatalf("whitespace input scored %d", got)
	}
}

func TestScoreComponents(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		target string
		want   int
	}{
		// substring base floor(5/7*80)+10 = 67, plus prefix 10
		{"substring with prefix", "stand", "standup", 77},
		// substring base floor(2/7*80)+10 = 32, no prefix
		{"substring mid-word", "up", "standup", 32},
		// base capped at 80, prefix 10
		{"long substring capped", "abcdefgh", "abcdefghi", 90},
		// no substring, two shared tokens
		{"token overlap only", "epic api", "85n — api epic", 14},
		// query spans the em dash: base uses character counts,
		// floor(9/14*80)+10 = 61, plus two token overlaps and prefix
		{"substring across em dash", "85n — API", "85n — API epic", 85},
		// case-insensitive exact via normalization
		{"case folded", "LUNCH", "lunch", 100},
		{"no relation", "zzqqxx", "85n — API epic", 0},
	}
	for _, tc := range cases {
		if got := Score(tc.input, tc.target); got != tc.want {
			t.Fatalf("%s: Score(%q, %q) = %d, want %d", tc.name, tc.input, tc.target, got, tc.want)
		}
	}
}

func TestScoreCappedAt100(t *testing.T) {
	// base 72 + 4 token overlaps (28) + prefix 10 would be 110.
	if got := Score("a1 b2 c3 d4", "a1 b2 c3 d4 e5"); got != 100 {
		t.Fatalf("expected cap at 100, got %d", got)
	}
}

func TestScoreDuplicateTokensCountOnce(t *testing.T) {
	// "api api" collapses to one token and is not a substring of the target,
	// so only a single +7 overlap applies.
	if got := Score("api api", "ticket for api work"); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}
