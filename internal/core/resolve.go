package core

import (
	"sort"
	"strings"
)

// Resolution is the outcome of matching free text against known categories.
// When IsNew is true the category was synthesized and has NOT been persisted:
// the caller must append it to the category collection exactly once.
type Resolution struct {
	Category Category
	IsNew    bool
}

// categoryScore is the best score of the query against a category's label,
// ticket and description.
func categoryScore(query string, c Category) int {
	s := Score(query, c.Label)
	if v := Score(query, c.Ticket); v > s {
		s = v
	}
	if v := Score(query, c.Description); v > s {
		s = v
	}
	return s
}

// Resolve picks the best-matching existing category for freeText, or
// synthesizes an ad-hoc one when no category scores at least MatchThreshold.
// Ties go to the earliest category in the list. Resolve is pure: it never
// mutates categories and has no side effects beyond generating a fresh id
// for an ad-hoc category.
func Resolve(freeText string, categories []Category) Resolution {
	best := -1
	var winner Category
	for _, c := range categories {
		if s := categoryScore(freeText, c); s > best {
			best = s
			winner = c
		}
	}
	if best >= MatchThreshold {
		return Resolution{Category: winner}
	}

	// Ad-hoc categories carry the raw ticket as their label, not the
	// "ticket — description" form.
	ticket := strings.TrimSpace(freeText)
	return Resolution{
		Category: Category{
			ID:          NewCategoryID(),
			Ticket:      ticket,
			Description: "Ad-hoc",
			Label:       ticket,
		},
		IsNew: true,
	}
}

// Suggest returns up to limit categories matching query, best first.
// Zero-scoring categories are dropped and equal scores keep list order.
// An empty (post-trim) query yields no suggestions.
func Suggest(query string, categories []Category, limit int) []Category {
	q := strings.TrimSpace(query)
	if q == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		c Category
		s int
	}
	var hits []scored
	for _, c := range categories {
		if s := categoryScore(q, c); s > 0 {
			hits = append(hits, scored{c: c, s: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].s > hits[j].s })
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]Category, len(hits))
	for i, h := range hits {
		out[i] = h.c
	}
	return out
}
