package core

import (
	"math"
	"sort"
)

// TimedEntry couples an entry with its derived duration in minutes.
type TimedEntry struct {
	Entry
	Minutes int `json:"minutes"`
}

// ComputeDurations filters entries to the given range and derives each
// entry's duration from the gap to the chronologically next entry on the
// same local calendar day. The last entry of a day always gets zero minutes,
// even when another entry follows on a later day. The result is ordered
// ascending by timestamp.
func ComputeDurations(entries []Entry, r Range) []TimedEntry {
	var filtered []Entry
	for _, e := range entries {
		if r.Contains(e.TS) {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TS.Before(filtered[j].TS)
	})

	out := make([]TimedEntry, len(filtered))
	for i, e := range filtered {
		out[i] = TimedEntry{Entry: e}
	}

	// Day-groups partition the sorted slice; since durations only look at
	// the next index within a group, index lists are enough.
	byDay := make(map[string][]int)
	for i, e := range filtered {
		key := e.TS.Local().Format("2006-01-02")
		byDay[key] = append(byDay[key], i)
	}
	for _, idx := range byDay {
		for j := 0; j+1 < len(idx); j++ {
			gap := filtered[idx[j+1]].TS.Sub(filtered[idx[j]].TS)
			minutes := int(math.Round(gap.Minutes()))
			if minutes < 0 {
				minutes = 0
			}
			out[idx[j]].Minutes = minutes
		}
	}
	return out
}
