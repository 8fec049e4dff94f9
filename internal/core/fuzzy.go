package core

import (
	"strings"
	"unicode/utf8"
)

// Fuzzy scoring constants. The numbers are part of the matching contract:
// changing them changes which free text resolves to which category.
const (
	scoreExactMatch     = 100
	scoreSubstringBase  = 80
	scoreSubstringBonus = 10
	scoreTokenOverlap   = 7
	scorePrefixBonus    = 10

	// MatchThreshold is the minimum score at which free text resolves to an
	// existing category instead of synthesizing an ad-hoc one.
	MatchThreshold = 60
)

// Score rates how well input matches target on a 0..100 scale. Both strings
// are lowercased and trimmed first. The score is deterministic but not
// symmetric: input and target play different roles.
func Score(input, target string) int {
	a := strings.ToLower(strings.TrimSpace(input))
	b := strings.ToLower(strings.TrimSpace(target))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return scoreExactMatch
	}

	score := 0
	if strings.Contains(b, a) {
		// Length ratio counts characters, not bytes: labels carry a
		// multi-byte em dash and must not dilute the base.
		ratio := float64(utf8.RuneCountInString(a)) / float64(utf8.RuneCountInString(b))
		base := int(ratio*scoreSubstringBase) + scoreSubstringBonus
		if base > scoreSubstringBase {
			base = scoreSubstringBase
		}
		score = base
	}

	bt := tokenSet(b)
	for t := range tokenSet(a) {
		if _, ok := bt[t]; ok {
			score += scoreTokenOverlap
		}
	}

	if strings.HasPrefix(b, a) {
		score += scorePrefixBonus
	}

	if score > scoreExactMatch {
		score = scoreExactMatch
	}
	return score
}

// tokenSet splits a normalized string on runs of non-alphanumeric characters
// into a set of unique tokens. Duplicate tokens count once.
func tokenSet(s string) map[string]struct{} {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
