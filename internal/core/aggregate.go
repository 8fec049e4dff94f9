package core

import (
	"fmt"
	"sort"
)

// TotalsFilter selects which categories count toward totals.
type TotalsFilter string

const (
	FilterWork TotalsFilter = "work"
	FilterAll  TotalsFilter = "all"
)

type (
	// TotalRow is the summed minutes for one rendered category label.
	TotalRow struct {
		Label   string `json:"label"`
		Minutes int    `json:"minutes"`
	}

	// Totals is a per-label breakdown plus the grand total, best first.
	Totals struct {
		Rows         []TotalRow `json:"rows"`
		TotalMinutes int        `json:"totalMinutes"`
	}
)

// Aggregate sums minutes per category label. Rows whose category no longer
// exists are skipped entirely, as are non-work categories under FilterWork.
// Keying is by rendered label, so two categories that render the same label
// collapse into one row. Output rows are sorted descending by minutes;
// ties keep first-appearance order.
func Aggregate(rows []TimedEntry, categories []Category, filter TotalsFilter) Totals {
	index := make(map[string]Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}

	sums := make(map[string]int)
	var order []string
	for _, r := range rows {
		cat, ok := index[r.CategoryID]
		if !ok {
			continue
		}
		if filter == FilterWork && cat.NonWork {
			continue
		}
		if _, seen := sums[cat.Label]; !seen {
			order = append(order, cat.Label)
		}
		sums[cat.Label] += r.Minutes
	}

	out := Totals{Rows: make([]TotalRow, 0, len(order))}
	for _, label := range order {
		out.Rows = append(out.Rows, TotalRow{Label: label, Minutes: sums[label]})
	}
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].Minutes > out.Rows[j].Minutes
	})
	for _, r := range out.Rows {
		out.TotalMinutes += r.Minutes
	}
	return out
}

// FormatMinutes renders a minute total as "3h 05m".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
